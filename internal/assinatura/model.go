// internal/assinatura/model.go
package assinatura

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusAtiva        = "ativa"
	StatusInadimplente = "inadimplente"
	StatusCancelada    = "cancelada"
)

// Assinatura é o vínculo de cobrança do usuário com a plataforma. Usuário
// sem assinatura ativa perde acesso às rotas de operação do sistema.
type Assinatura struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UsuarioID uint `gorm:"not null;uniqueIndex" json:"usuarioId"`

	Plano    string     `gorm:"size:50;not null;default:'mensal'" json:"plano"`
	Status   string     `gorm:"size:30;not null;default:'ativa'" json:"status"`
	ExpiraEm *time.Time `json:"expiraEm,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ativa informa se a assinatura dá acesso agora.
func (a *Assinatura) Ativa(agora time.Time) bool {
	if a.Status != StatusAtiva {
		return false
	}
	if a.ExpiraEm != nil && agora.After(*a.ExpiraEm) {
		return false
	}
	return true
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Assinatura{})
}
