package comissao

import (
	"time"

	"gorm.io/gorm"
)

// Comissao representa a comissão de venda vinculada a um contrato.
// No máximo uma por contrato; o estado de pagamento é independente
// das parcelas do contrato.
type Comissao struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ContratoID  uint    `gorm:"not null;uniqueIndex" json:"contratoId"`
	Tipo        string  `gorm:"size:20;not null" json:"tipo"` // "fixed" ou "percentage"
	Valor       float64 `gorm:"not null" json:"valor"`
	VendedorID  *uint   `json:"vendedorId,omitempty"`
	Observacoes string  `gorm:"size:500" json:"observacoes,omitempty"`

	Pago      bool       `gorm:"not null;default:false" json:"pago"`
	PagoEm    *time.Time `json:"pagoEm,omitempty"`
	ValorPago *float64   `json:"valorPago,omitempty"`

	// Valor devido, derivado de Tipo/Valor e do total do contrato.
	// Preenchido na resposta, nunca persistido.
	ValorCalculado float64 `gorm:"-" json:"valorCalculado"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Comissao{})
}
