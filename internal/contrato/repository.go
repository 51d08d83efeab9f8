// internal/contrato/repository.go
package contrato

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Contrato
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByID retorna o contrato com parcelas, avulsos e comissão carregados.
func (r *Repository) FindByID(id uint) (*Contrato, error) {
	var c Contrato
	err := r.DB.
		Preload("Parcelas", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_vencimento ASC")
		}).
		Preload("PagamentosAvulsos").
		Preload("Comissao").
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindAll lista os contratos sem carregar as associações.
func (r *Repository) FindAll() ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

// ListByClienteID lista os contratos de um cliente.
func (r *Repository) ListByClienteID(clienteID uint) ([]Contrato, error) {
	var list []Contrato
	err := r.DB.Where("cliente_id = ?", clienteID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Update salva alterações em um contrato existente
func (r *Repository) Update(c *Contrato) error {
	return r.DB.Omit("Parcelas", "PagamentosAvulsos", "Comissao").Save(c).Error
}

// Delete remove um contrato (soft delete).
func (r *Repository) Delete(c *Contrato) error {
	return r.DB.Delete(c).Error
}
