// internal/pagamentoavulso/repository.go
package pagamentoavulso

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para PagamentoAvulso
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo pagamento avulso
func (r *Repository) Create(p *PagamentoAvulso) error {
	return r.DB.Create(p).Error
}

// ListByContratoID retorna os pagamentos avulsos de um contrato.
func (r *Repository) ListByContratoID(contratoID uint) ([]PagamentoAvulso, error) {
	var list []PagamentoAvulso
	err := r.DB.Where("contrato_id = ?", contratoID).
		Order("data_pagamento ASC").
		Find(&list).Error
	return list, err
}

// FindByID retorna um pagamento avulso pelo ID
func (r *Repository) FindByID(id uint) (*PagamentoAvulso, error) {
	var p PagamentoAvulso
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete remove um pagamento avulso.
func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&PagamentoAvulso{}, id).Error
}

// DataFechamentoDoContrato busca a data de fechamento do contrato dono.
// Consulta direta na tabela para não acoplar este pacote ao de contratos.
func (r *Repository) DataFechamentoDoContrato(contratoID uint) (*time.Time, error) {
	var d struct {
		DataFechamento *time.Time `gorm:"column:data_fechamento"`
	}
	err := r.DB.Table("contratos").
		Where("id = ? AND deleted_at IS NULL", contratoID).
		Select("data_fechamento").
		Scan(&d).Error
	return d.DataFechamento, err
}
