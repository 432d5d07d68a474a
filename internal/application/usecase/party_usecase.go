package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
)

// PartyUseCase casos de uso de suppliers. Cada operación re-verifica la cadena
// de propiedad: primero company -> usuario, luego supplier -> company.
type PartyUseCase struct {
	repo    repository.PartyRepository
	company *CompanyUseCase
}

// NewPartyUseCase construye el caso de uso; reutiliza CompanyUseCase para la
// verificación de propiedad de la empresa.
func NewPartyUseCase(repo repository.PartyRepository, company *CompanyUseCase) *PartyUseCase {
	return &PartyUseCase{repo: repo, company: company}
}

// ListByCompany suppliers de la empresa, más recientes primero.
func (uc *PartyUseCase) ListByCompany(ctx context.Context, callerID, companyID string) (*dto.PartyListResponse, error) {
	if _, err := uc.company.EnsureOwnership(ctx, companyID, callerID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToPartyResponse(p))
	}
	return &dto.PartyListResponse{Data: items}, nil
}

// Create crea un supplier para la empresa del usuario.
func (uc *PartyUseCase) Create(ctx context.Context, callerID, companyID string, in dto.SavePartyRequest) (*dto.PartyResponse, error) {
	if _, err := uc.company.EnsureOwnership(ctx, companyID, callerID); err != nil {
		return nil, err
	}
	isRegistered := true
	if in.IsRegisteredGST != nil {
		isRegistered = *in.IsRegisteredGST
	}
	now := time.Now()
	party := &entity.Party{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		GSTIN:           in.GSTIN,
		Phone:           in.Phone,
		Email:           in.Email,
		Address:         in.Address,
		StateCode:       in.StateCode,
		IsRegisteredGST: isRegistered,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(party); err != nil {
		return nil, err
	}
	return entityToPartyResponse(party), nil
}

// GetByID devuelve el supplier; domain.ErrNotFound si la cadena de propiedad no resuelve.
func (uc *PartyUseCase) GetByID(ctx context.Context, callerID, companyID, partyID string) (*dto.PartyResponse, error) {
	party, err := uc.ensureParty(ctx, callerID, companyID, partyID)
	if err != nil {
		return nil, err
	}
	return entityToPartyResponse(party), nil
}

// Update reemplaza los datos del supplier tras verificar la cadena completa.
func (uc *PartyUseCase) Update(ctx context.Context, callerID, companyID, partyID string, in dto.SavePartyRequest) (*dto.PartyResponse, error) {
	party, err := uc.ensureParty(ctx, callerID, companyID, partyID)
	if err != nil {
		return nil, err
	}
	isRegistered := true
	if in.IsRegisteredGST != nil {
		isRegistered = *in.IsRegisteredGST
	}
	party.Name = in.Name
	party.GSTIN = in.GSTIN
	party.Phone = in.Phone
	party.Email = in.Email
	party.Address = in.Address
	party.StateCode = in.StateCode
	party.IsRegisteredGST = isRegistered
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(party); err != nil {
		return nil, err
	}
	return entityToPartyResponse(party), nil
}

// Delete elimina el supplier tras verificar la cadena completa.
func (uc *PartyUseCase) Delete(ctx context.Context, callerID, companyID, partyID string) error {
	if _, err := uc.ensureParty(ctx, callerID, companyID, partyID); err != nil {
		return err
	}
	return uc.repo.Delete(partyID)
}

func (uc *PartyUseCase) ensureParty(ctx context.Context, callerID, companyID, partyID string) (*entity.Party, error) {
	if _, err := uc.company.EnsureOwnership(ctx, companyID, callerID); err != nil {
		return nil, err
	}
	party, err := uc.repo.GetByIDAndCompany(partyID, companyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return party, nil
}

func entityToPartyResponse(p *entity.Party) *dto.PartyResponse {
	if p == nil {
		return nil
	}
	return &dto.PartyResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		Name:            p.Name,
		GSTIN:           p.GSTIN,
		Phone:           p.Phone,
		Email:           p.Email,
		Address:         p.Address,
		StateCode:       p.StateCode,
		IsRegisteredGST: p.IsRegisteredGST,
		CreatedAt:       p.CreatedAt,
	}
}
