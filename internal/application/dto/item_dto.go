package dto

import "time"

// SaveItemRequest entrada para crear o actualizar un item.
// BasePrice y GSTRate llegan como string para no perder precisión decimal
// (el use case los convierte con shopspring/decimal y valida los rangos).
type SaveItemRequest struct {
	PartyID     string `json:"partyId" validate:"required"`
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Unit        string `json:"unit"`
	HSNCode     string `json:"hsnCode"`
	BasePrice   string `json:"basePrice" validate:"required"`
	GSTRate     string `json:"gstRate" validate:"required"`
}

// ItemResponse salida de un item. Los montos se serializan como número JSON.
type ItemResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	PartyID     string    `json:"partyId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SKU         string    `json:"sku"`
	Unit        string    `json:"unit"`
	HSNCode     string    `json:"hsnCode"`
	BasePrice   float64   `json:"basePrice"`
	GSTRate     float64   `json:"gstRate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ItemListResponse items de una empresa.
type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
}
