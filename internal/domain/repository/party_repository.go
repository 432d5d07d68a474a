package repository

import "github.com/tu-usuario/poms-pro/internal/domain/entity"

// PartyRepository define el puerto de persistencia para Party (suppliers).
type PartyRepository interface {
	Create(party *entity.Party) error
	// GetByIDAndCompany devuelve el supplier solo si pertenece a la empresa dada.
	GetByIDAndCompany(id, companyID string) (*entity.Party, error)
	Update(party *entity.Party) error
	ListByCompany(companyID string) ([]*entity.Party, error)
	Delete(id string) error
}
