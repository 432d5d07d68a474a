package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. El dueño sale de la sesión, nunca del payload.
type CreateCompanyRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	GSTIN     string `json:"gstin" validate:"omitempty,len=15"`
	PAN       string `json:"pan" validate:"omitempty,len=10"`
	Address   string `json:"address"`
	StateCode string `json:"stateCode" validate:"omitempty,max=5"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	LogoURL   string `json:"logoUrl" validate:"omitempty,url"`
	GSTType   string `json:"gstType" validate:"omitempty,oneof=INTRA_STATE INTER_STATE"`
}

// UpdateCompanyRequest entrada para actualizar una empresa. Campos vacíos se persisten vacíos (el formulario envía todo).
type UpdateCompanyRequest struct {
	Name      string `json:"name" validate:"required,min=1"`
	GSTIN     string `json:"gstin"`
	PAN       string `json:"pan"`
	Address   string `json:"address"`
	StateCode string `json:"stateCode"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LogoURL   string `json:"logoUrl"`
	GSTType   string `json:"gstType" validate:"required,oneof=INTRA_STATE INTER_STATE"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GSTIN     string    `json:"gstin"`
	PAN       string    `json:"pan"`
	Address   string    `json:"address"`
	StateCode string    `json:"stateCode"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	LogoURL   string    `json:"logoUrl"`
	GSTType   string    `json:"gstType"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CompanyDetailResponse empresa con sus suppliers embebidos (GET /api/company/:id).
type CompanyDetailResponse struct {
	CompanyResponse
	Parties []PartyResponse `json:"parties"`
}

// CompanyListResponse listado de empresas del usuario autenticado.
type CompanyListResponse struct {
	Data []CompanyResponse `json:"data"`
}
