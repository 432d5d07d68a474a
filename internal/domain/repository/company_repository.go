package repository

import (
	"context"

	"github.com/tu-usuario/poms-pro/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	// GetByIDAndUser devuelve la empresa solo si pertenece al usuario dado.
	// Es la consulta de la cadena de propiedad: nil, nil si no existe o no es suya.
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Company, error)
	Update(company *entity.Company) error
	ListByUser(userID string) ([]*entity.Company, error)
}
