// internal/pagamentoavulso/model.go
package pagamentoavulso

import (
	"time"

	"gorm.io/gorm"
)

// PagamentoAvulso é um pagamento registrado contra o contrato fora do
// cronograma de parcelas. Conta para o total pago, mas não quita nenhuma
// parcela individual.
type PagamentoAvulso struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ContratoID uint `gorm:"not null;index" json:"contratoId"`

	Valor          float64   `gorm:"not null" json:"valor"`
	DataPagamento  time.Time `gorm:"not null" json:"dataPagamento"`
	FormaPagamento string    `gorm:"size:100" json:"formaPagamento,omitempty"`
	Observacoes    string    `gorm:"size:500" json:"observacoes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PagamentoAvulso{})
}
