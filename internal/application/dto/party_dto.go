package dto

import "time"

// SavePartyRequest entrada para crear o actualizar un supplier (el formulario envía el registro completo).
type SavePartyRequest struct {
	Name            string `json:"name" validate:"required,min=1"`
	GSTIN           string `json:"gstin" validate:"omitempty,len=15"`
	Phone           string `json:"phone"`
	Email           string `json:"email" validate:"omitempty,email"`
	Address         string `json:"address"`
	StateCode       string `json:"stateCode"`
	IsRegisteredGST *bool  `json:"isRegisteredGst"` // nil = true (por defecto registrado)
}

// PartyResponse salida de un supplier.
type PartyResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"companyId"`
	Name            string    `json:"name"`
	GSTIN           string    `json:"gstin"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	Address         string    `json:"address"`
	StateCode       string    `json:"stateCode"`
	IsRegisteredGST bool      `json:"isRegisteredGst"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PartyListResponse suppliers de una empresa.
type PartyListResponse struct {
	Data []PartyResponse `json:"data"`
}
