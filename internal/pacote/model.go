// internal/pacote/model.go
package pacote

import "gorm.io/gorm"

// Pacote é um pacote de serviço do buffet oferecido nos eventos.
type Pacote struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Nome          string  `gorm:"size:150;not null" json:"nome"`
	Descricao     string  `gorm:"size:500" json:"descricao"`
	ValorBase     float64 `gorm:"not null;default:0" json:"valorBase"`
	QtdConvidados int     `gorm:"not null;default:0" json:"qtdConvidados"`
	Ativo         bool    `gorm:"not null;default:true" json:"ativo"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pacote{})
}
