// internal/pacote/repository.go
package pacote

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Pacote) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindAll() ([]Pacote, error) {
	var list []Pacote
	err := r.DB.Order("nome ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Pacote, error) {
	var p Pacote
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(p *Pacote) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Pacote{}, id).Error
}
