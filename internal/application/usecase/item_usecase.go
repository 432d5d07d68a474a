package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/poms-pro/internal/application/dto"
	"github.com/tu-usuario/poms-pro/internal/domain"
	"github.com/tu-usuario/poms-pro/internal/domain/entity"
	"github.com/tu-usuario/poms-pro/internal/domain/repository"
)

// ItemUseCase casos de uso del catálogo de items. Igual que suppliers: la
// cadena de propiedad se re-verifica en cada operación.
type ItemUseCase struct {
	repo      repository.ItemRepository
	partyRepo repository.PartyRepository
	company   *CompanyUseCase
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, partyRepo repository.PartyRepository, company *CompanyUseCase) *ItemUseCase {
	return &ItemUseCase{repo: repo, partyRepo: partyRepo, company: company}
}

// ListByCompany items de la empresa, más recientes primero.
func (uc *ItemUseCase) ListByCompany(ctx context.Context, callerID, companyID string) (*dto.ItemListResponse, error) {
	if _, err := uc.company.EnsureOwnership(ctx, companyID, callerID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *entityToItemResponse(it))
	}
	return &dto.ItemListResponse{Data: items}, nil
}

// Create crea un item. El supplier referenciado debe pertenecer a la misma
// empresa; si no, domain.ErrInvalidInput.
func (uc *ItemUseCase) Create(ctx context.Context, callerID, companyID string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	if _, err := uc.company.EnsureOwnership(ctx, companyID, callerID); err != nil {
		return nil, err
	}
	basePrice, gstRate, err := uc.parseAmounts(in)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureParty(companyID, in.PartyID); err != nil {
		return nil, err
	}
	now := time.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		PartyID:     in.PartyID,
		Name:        in.Name,
		Description: in.Description,
		SKU:         in.SKU,
		Unit:        in.Unit,
		HSNCode:     in.HSNCode,
		BasePrice:   basePrice,
		GSTRate:     gstRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return entityToItemResponse(item), nil
}

// GetByID devuelve el item; domain.ErrNotFound si la cadena de propiedad no resuelve.
func (uc *ItemUseCase) GetByID(ctx context.Context, callerID, companyID, itemID string) (*dto.ItemResponse, error) {
	item, err := uc.ensureItem(ctx, callerID, companyID, itemID)
	if err != nil {
		return nil, err
	}
	return entityToItemResponse(item), nil
}

// Update reemplaza los datos del item tras verificar la cadena completa.
func (uc *ItemUseCase) Update(ctx context.Context, callerID, companyID, itemID string, in dto.SaveItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.ensureItem(ctx, callerID, companyID, itemID)
	if err != nil {
		return nil, err
	}
	basePrice, gstRate, err := uc.parseAmounts(in)
	if err != nil {
		return nil, err
	}
	if err := uc.ensureParty(companyID, in.PartyID); err != nil {
		return nil, err
	}
	item.PartyID = in.PartyID
	item.Name = in.Name
	item.Description = in.Description
	item.SKU = in.SKU
	item.Unit = in.Unit
	item.HSNCode = in.HSNCode
	item.BasePrice = basePrice
	item.GSTRate = gstRate
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return entityToItemResponse(item), nil
}

// Delete elimina el item tras verificar la cadena completa.
func (uc *ItemUseCase) Delete(ctx context.Context, callerID, companyID, itemID string) error {
	if _, err := uc.ensureItem(ctx, callerID, companyID, itemID); err != nil {
		return err
	}
	return uc.repo.Delete(itemID)
}

// parseAmounts convierte y valida basePrice (>= 0) y gstRate (0..100).
func (uc *ItemUseCase) parseAmounts(in dto.SaveItemRequest) (decimal.Decimal, decimal.Decimal, error) {
	basePrice, err := decimal.NewFromString(in.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	gstRate, err := decimal.NewFromString(in.GSTRate)
	if err != nil || gstRate.IsNegative() || gstRate.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	return basePrice.Round(2), gstRate.Round(2), nil
}

// ensureParty valida que el supplier exista y sea de la misma empresa.
func (uc *ItemUseCase) ensureParty(companyID, partyID string) error {
	if partyID == "" {
		return domain.ErrInvalidInput
	}
	party, err := uc.partyRepo.GetByIDAndCompany(partyID, companyID)
	if err != nil {
		return err
	}
	if party == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *ItemUseCase) ensureItem(ctx context.Context, callerID, companyID, itemID string) (*entity.Item, error) {
	if _, err := uc.company.EnsureOwnership(ctx, companyID, callerID); err != nil {
		return nil, err
	}
	item, err := uc.repo.GetByIDAndCompany(itemID, companyID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func entityToItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	basePrice, _ := it.BasePrice.Float64()
	gstRate, _ := it.GSTRate.Float64()
	return &dto.ItemResponse{
		ID:          it.ID,
		CompanyID:   it.CompanyID,
		PartyID:     it.PartyID,
		Name:        it.Name,
		Description: it.Description,
		SKU:         it.SKU,
		Unit:        it.Unit,
		HSNCode:     it.HSNCode,
		BasePrice:   basePrice,
		GSTRate:     gstRate,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
