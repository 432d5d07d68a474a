package entity

import "time"

// Tipos de GST para la empresa (régimen de la India).
const (
	GSTTypeIntraState = "INTRA_STATE"
	GSTTypeInterState = "INTER_STATE"
)

// Company representa una empresa del sistema. Cada empresa pertenece a
// exactamente un User (UserID); toda la cadena de propiedad de suppliers e
// items se resuelve a través de ella.
type Company struct {
	ID        string
	UserID    string // dueño de la empresa (raíz de la cadena de propiedad)
	Name      string
	GSTIN     string // GSTIN de 15 caracteres, único; vacío = no registrada
	PAN       string
	Address   string
	StateCode string
	Email     string
	Phone     string
	LogoURL   string
	GSTType   string // INTRA_STATE | INTER_STATE
	CreatedAt time.Time
	UpdatedAt time.Time
}
