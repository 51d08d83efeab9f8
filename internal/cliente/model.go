// internal/cliente/model.go
package cliente

import (
	"time"

	"gorm.io/gorm"
)

// Cliente é o contratante dos eventos do buffet.
type Cliente struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `gorm:"size:150;not null" json:"nome"`
	Documento string `gorm:"size:20;index" json:"documento"` // CPF ou CNPJ
	Email     string `gorm:"size:150" json:"email"`
	Telefone  string `gorm:"size:30" json:"telefone"`
	Endereco  string `gorm:"size:255" json:"endereco"`

	Observacoes string `gorm:"size:500" json:"observacoes,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Cliente{})
}
