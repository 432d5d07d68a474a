package repository

import "github.com/tu-usuario/poms-pro/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item.
type ItemRepository interface {
	Create(item *entity.Item) error
	// GetByIDAndCompany devuelve el item solo si pertenece a la empresa dada.
	GetByIDAndCompany(id, companyID string) (*entity.Item, error)
	Update(item *entity.Item) error
	ListByCompany(companyID string) ([]*entity.Item, error)
	Delete(id string) error
}
