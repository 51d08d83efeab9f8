// internal/assinatura/repository.go
package assinatura

import "gorm.io/gorm"

// Repository encapsula operações de banco para Assinatura
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByUsuarioID retorna a assinatura de um usuário, se existir.
func (r *Repository) FindByUsuarioID(usuarioID uint) (*Assinatura, error) {
	var a Assinatura
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Save insere ou atualiza a assinatura.
func (r *Repository) Save(a *Assinatura) error {
	return r.DB.Save(a).Error
}
