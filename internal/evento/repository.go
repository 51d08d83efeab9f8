// internal/evento/repository.go
package evento

import (
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Evento) error {
	return r.DB.Create(e).Error
}

func (r *Repository) FindAll() ([]Evento, error) {
	var list []Evento
	err := r.DB.Order("data ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Evento, error) {
	var e Evento
	if err := r.DB.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListByClienteID lista os eventos de um cliente.
func (r *Repository) ListByClienteID(clienteID uint) ([]Evento, error) {
	var list []Evento
	err := r.DB.Where("cliente_id = ?", clienteID).
		Order("data ASC").
		Find(&list).Error
	return list, err
}

// ListByPeriodo lista os eventos com data dentro do intervalo, usado nos
// painéis e no relatório mensal.
func (r *Repository) ListByPeriodo(inicio, fim time.Time) ([]Evento, error) {
	var list []Evento
	err := r.DB.Where("data >= ? AND data < ?", inicio, fim).
		Order("data ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) Update(e *Evento) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(id uint) error {
	return r.DB.Delete(&Evento{}, id).Error
}
