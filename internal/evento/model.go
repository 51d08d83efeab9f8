// internal/evento/model.go
package evento

import (
	"time"

	"gorm.io/gorm"
)

// Evento é uma festa/serviço agendado para um cliente, normalmente vinculado
// a um pacote do buffet.
type Evento struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	ClienteID uint  `gorm:"not null;index" json:"clienteId"`
	PacoteID  *uint `gorm:"index" json:"pacoteId,omitempty"`

	Nome          string    `gorm:"size:150;not null" json:"nome"`
	Data          time.Time `gorm:"not null;index" json:"data"`
	Local         string    `gorm:"size:255" json:"local"`
	QtdConvidados int       `gorm:"not null;default:0" json:"qtdConvidados"`
	Status        string    `gorm:"size:50;not null;default:'agendado'" json:"status"`
	Observacoes   string    `gorm:"size:500" json:"observacoes,omitempty"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Evento{})
}
