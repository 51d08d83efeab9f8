// internal/parcela/repository.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Parcela
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListByContratoID retorna as parcelas de um contrato por ordem de vencimento.
func (r *Repository) ListByContratoID(contratoID uint) ([]Parcela, error) {
	var parcelas []Parcela
	err := r.DB.Where("contrato_id = ?", contratoID).
		Order("data_vencimento ASC").
		Find(&parcelas).Error
	return parcelas, err
}

// FindByID retorna uma parcela pelo ID
func (r *Repository) FindByID(id uint) (*Parcela, error) {
	var p Parcela
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Update salva alterações em uma parcela existente
func (r *Repository) Update(p *Parcela) error {
	return r.DB.Save(p).Error
}

// CountByContratoID conta as parcelas de um contrato.
func (r *Repository) CountByContratoID(contratoID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&Parcela{}).Where("contrato_id = ?", contratoID).Count(&n).Error
	return n, err
}

// DadosContrato é a projeção do contrato dono da parcela usada nas
// validações de pagamento.
type DadosContrato struct {
	QtdParcelas    int        `gorm:"column:qtd_parcelas"`
	DataFechamento *time.Time `gorm:"column:data_fechamento"`
}

// DadosDoContrato busca quantidade de parcelas e data de fechamento do
// contrato. Consulta direta na tabela para não acoplar este pacote ao de
// contratos.
func (r *Repository) DadosDoContrato(contratoID uint) (*DadosContrato, error) {
	var d DadosContrato
	err := r.DB.Table("contratos").
		Where("id = ? AND deleted_at IS NULL", contratoID).
		Select("qtd_parcelas, data_fechamento").
		Scan(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
