// internal/usuario/repository.go
package usuario

import "gorm.io/gorm"

// Repository encapsula operações de banco para Usuario
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// FindByEmail busca um usuário pelo email de login.
func (r *Repository) FindByEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Create(u *Usuario) error {
	return r.DB.Create(u).Error
}

func (r *Repository) FindAll() ([]Usuario, error) {
	var list []Usuario
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) Update(u *Usuario) error {
	return r.DB.Save(u).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Usuario{}, id).Error
}
