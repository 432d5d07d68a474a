package entity

import "time"

// Party representa un proveedor (supplier) de una empresa.
// Pertenece a exactamente una Company; la propiedad se verifica siempre
// subiendo la cadena Party.CompanyID -> Company.UserID.
type Party struct {
	ID              string
	CompanyID       string
	Name            string
	GSTIN           string
	Phone           string
	Email           string
	Address         string
	StateCode       string
	IsRegisteredGST bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
