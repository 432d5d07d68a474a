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

// CompanyUseCase casos de uso de empresas. Toda operación sobre una empresa
// existente verifica primero que pertenezca al usuario que llama; la falla se
// reporta como domain.ErrNotFound, indistinguible de "no existe".
type CompanyUseCase struct {
	repo      repository.CompanyRepository
	partyRepo repository.PartyRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, partyRepo repository.PartyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, partyRepo: partyRepo}
}

// EnsureOwnership verifica la cadena de propiedad companyID -> userID.
// Devuelve domain.ErrNotFound si la empresa no existe o no es del usuario.
// Se re-ejecuta en cada endpoint que toca recursos de la empresa; no se cachea.
func (uc *CompanyUseCase) EnsureOwnership(ctx context.Context, companyID, userID string) (*entity.Company, error) {
	company, err := uc.repo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return company, nil
}

// Create crea una empresa cuyo dueño es el usuario autenticado.
// Devuelve domain.ErrGSTINAlreadyExists si el GSTIN ya está registrado.
func (uc *CompanyUseCase) Create(callerID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	gstType := in.GSTType
	if gstType == "" {
		gstType = entity.GSTTypeIntraState
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		UserID:    callerID,
		Name:      in.Name,
		GSTIN:     in.GSTIN,
		PAN:       in.PAN,
		Address:   in.Address,
		StateCode: in.StateCode,
		Email:     in.Email,
		Phone:     in.Phone,
		LogoURL:   in.LogoURL,
		GSTType:   gstType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// ListByUser devuelve las empresas del usuario, más recientes primero.
func (uc *CompanyUseCase) ListByUser(callerID string) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListByUser(callerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{Data: items}, nil
}

// GetDetail devuelve la empresa con sus suppliers embebidos.
// domain.ErrNotFound si no existe o no pertenece al usuario.
func (uc *CompanyUseCase) GetDetail(ctx context.Context, callerID, companyID string) (*dto.CompanyDetailResponse, error) {
	company, err := uc.EnsureOwnership(ctx, companyID, callerID)
	if err != nil {
		return nil, err
	}
	parties, err := uc.partyRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyDetailResponse{
		CompanyResponse: *entityToCompanyResponse(company),
		Parties:         make([]dto.PartyResponse, 0, len(parties)),
	}
	for _, p := range parties {
		out.Parties = append(out.Parties, *entityToPartyResponse(p))
	}
	return out, nil
}

// Update reemplaza los datos de la empresa tras verificar propiedad.
// domain.ErrNotFound si no es del usuario; domain.ErrGSTINAlreadyExists en conflicto.
func (uc *CompanyUseCase) Update(ctx context.Context, callerID, companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.EnsureOwnership(ctx, companyID, callerID)
	if err != nil {
		return nil, err
	}
	company.Name = in.Name
	company.GSTIN = in.GSTIN
	company.PAN = in.PAN
	company.Address = in.Address
	company.StateCode = in.StateCode
	company.Email = in.Email
	company.Phone = in.Phone
	company.LogoURL = in.LogoURL
	company.GSTType = in.GSTType
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		GSTIN:     c.GSTIN,
		PAN:       c.PAN,
		Address:   c.Address,
		StateCode: c.StateCode,
		Email:     c.Email,
		Phone:     c.Phone,
		LogoURL:   c.LogoURL,
		GSTType:   c.GSTType,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
