// internal/relatorio/repository.go
package relatorio

import (
	"time"

	"gorm.io/gorm"
)

// Recebimento é a projeção de um pagamento recebido usada nas agregações.
type Recebimento struct {
	Valor          float64   `gorm:"column:valor"`
	FormaPagamento string    `gorm:"column:forma_pagamento"`
	Data           time.Time `gorm:"column:data"`
}

// Repository consulta as tabelas de cobrança diretamente; este pacote só lê.
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ParcelasPagasNoPeriodo lista os pagamentos de parcela dentro do intervalo.
// O status é comparado já normalizado: as linhas antigas gravavam "Pago".
func (r *Repository) ParcelasPagasNoPeriodo(inicio, fim time.Time) ([]Recebimento, error) {
	var list []Recebimento
	err := r.DB.Table("parcelas").
		Where("LOWER(status) IN ('paid', 'pago')").
		Where("data_pagamento >= ? AND data_pagamento < ?", inicio, fim).
		Select("COALESCE(valor_pago, 0) AS valor, forma_pagamento, data_pagamento AS data").
		Scan(&list).Error
	return list, err
}

// AvulsosNoPeriodo lista os pagamentos avulsos dentro do intervalo.
func (r *Repository) AvulsosNoPeriodo(inicio, fim time.Time) ([]Recebimento, error) {
	var list []Recebimento
	err := r.DB.Table("pagamento_avulsos").
		Where("data_pagamento >= ? AND data_pagamento < ?", inicio, fim).
		Select("valor, forma_pagamento, data_pagamento AS data").
		Scan(&list).Error
	return list, err
}

// ComissoesPagasNoPeriodo soma as comissões quitadas dentro do intervalo.
func (r *Repository) ComissoesPagasNoPeriodo(inicio, fim time.Time) (float64, error) {
	var total float64
	err := r.DB.Table("comissaos").
		Where("pago = ? AND deleted_at IS NULL", true).
		Where("pago_em >= ? AND pago_em < ?", inicio, fim).
		Select("COALESCE(SUM(COALESCE(valor_pago, 0)), 0)").
		Scan(&total).Error
	return total, err
}

// EventosNoPeriodo conta os eventos com data dentro do intervalo.
func (r *Repository) EventosNoPeriodo(inicio, fim time.Time) (int64, error) {
	var n int64
	err := r.DB.Table("eventos").
		Where("deleted_at IS NULL").
		Where("data >= ? AND data < ?", inicio, fim).
		Count(&n).Error
	return n, err
}
