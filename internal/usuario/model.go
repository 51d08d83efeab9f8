package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é um operador do sistema (dono ou funcionário do buffet).
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome      string `gorm:"size:100;not null" json:"nome"`
	Sobrenome string `gorm:"size:100" json:"sobrenome"`
	Email     string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Telefone  string `gorm:"size:30" json:"telefone"`

	Senha                 string `gorm:"size:255;not null" json:"-"`
	PrecisaRedefinirSenha bool   `json:"-"`
	IsAdmin               bool   `gorm:"default:false" json:"isAdmin"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
