// internal/cliente/repository.go
package cliente

import "gorm.io/gorm"

// Repository encapsula operações de banco para Cliente
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo cliente
func (r *Repository) Create(c *Cliente) error {
	return r.DB.Create(c).Error
}

// FindAll lista todos os clientes
func (r *Repository) FindAll() ([]Cliente, error) {
	var list []Cliente
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

// FindByID retorna um cliente pelo ID
func (r *Repository) FindByID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ExisteComDocumento verifica se já há cliente com o mesmo CPF/CNPJ.
func (r *Repository) ExisteComDocumento(documento string) (bool, error) {
	if documento == "" {
		return false, nil
	}
	var n int64
	err := r.DB.Model(&Cliente{}).Where("documento = ?", documento).Count(&n).Error
	return n > 0, err
}

// Update salva alterações em um cliente existente
func (r *Repository) Update(c *Cliente) error {
	return r.DB.Save(c).Error
}

// Delete remove um cliente (soft delete).
func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Cliente{}, id).Error
}
