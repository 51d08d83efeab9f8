// internal/comissao/repository.go
package comissao

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Comissao
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByContratoID retorna a comissão de um contrato, se existir.
// Propaga gorm.ErrRecordNotFound quando o contrato não tem comissão.
func (r *Repository) FindByContratoID(contratoID uint) (*Comissao, error) {
	var c Comissao
	if err := r.DB.Where("contrato_id = ?", contratoID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Save insere ou atualiza a comissão.
func (r *Repository) Save(c *Comissao) error {
	return r.DB.Save(c).Error
}

// Delete remove a comissão do contrato.
func (r *Repository) Delete(c *Comissao) error {
	return r.DB.Unscoped().Delete(c).Error
}

// ValorTotalDoContrato busca o valor total do contrato dono da comissão.
// Consulta direta na tabela para não acoplar este pacote ao de contratos.
func (r *Repository) ValorTotalDoContrato(contratoID uint) (float64, error) {
	var total float64
	err := r.DB.Table("contratos").
		Where("id = ? AND deleted_at IS NULL", contratoID).
		Select("COALESCE(valor_total, 0)").
		Scan(&total).Error
	return total, err
}

// ContratoExiste verifica se o contrato está cadastrado.
func (r *Repository) ContratoExiste(contratoID uint) (bool, error) {
	var n int64
	err := r.DB.Table("contratos").
		Where("id = ? AND deleted_at IS NULL", contratoID).
		Count(&n).Error
	return n > 0, err
}
