// internal/parcela/model.go
package parcela

import (
	"time"

	"gorm.io/gorm"
)

// Parcela representa uma única parcela do cronograma de pagamento de um
// contrato. Os campos de pagamento só ficam preenchidos com status "paid";
// reverter a parcela para pendente limpa todos eles.
type Parcela struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ContratoID uint `gorm:"not null;index" json:"contratoId"`

	Valor          float64   `gorm:"not null;default:0" json:"valor"`
	DataVencimento time.Time `gorm:"not null" json:"dataVencimento"`
	// Gravado sempre no código canônico ("paid", "pending", "overdue");
	// a entrada aceita também os rótulos em português, em qualquer caixa.
	Status string `gorm:"size:50;not null;default:'pending';index" json:"status"`

	DataPagamento  *time.Time `json:"dataPagamento,omitempty"`
	ValorPago      *float64   `json:"valorPago,omitempty"`
	FormaPagamento string     `gorm:"size:100" json:"formaPagamento,omitempty"`
	Observacoes    string     `gorm:"size:500" json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Parcela{})
}
