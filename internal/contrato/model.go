package contrato

import (
	"time"

	"gorm.io/gorm"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/comissao"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamentoavulso"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/parcela"
)

// Contrato é a raiz do agregado de cobrança de um evento: carrega o valor
// total, o cronograma de parcelas, os pagamentos avulsos e a comissão.
// ValorTotal é igual à soma das parcelas na criação e não é recalculado
// quando uma parcela é editada depois.
type Contrato struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ClienteID uint  `gorm:"not null;index" json:"clienteId"`
	EventoID  *uint `gorm:"index" json:"eventoId,omitempty"`

	ValorTotal  float64 `gorm:"not null" json:"valorTotal"`
	QtdParcelas int     `gorm:"not null;default:0" json:"qtdParcelas"`
	Observacoes string  `gorm:"size:500" json:"observacoes,omitempty"`

	// Contrato encerrado não aceita novos pagamentos nem novos itens.
	DataFechamento *time.Time `json:"dataFechamento,omitempty"`

	Parcelas          []parcela.Parcela                 `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"parcelas,omitempty"`
	PagamentosAvulsos []pagamentoavulso.PagamentoAvulso `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"pagamentosAvulsos,omitempty"`
	Comissao          *comissao.Comissao                `gorm:"foreignKey:ContratoID;constraint:OnDelete:CASCADE" json:"comissao,omitempty"`

	// Saldos derivados, preenchidos na resposta do detalhe.
	TotalPago     float64 `gorm:"-" json:"totalPago"`
	SaldoRestante float64 `gorm:"-" json:"saldoRestante"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
