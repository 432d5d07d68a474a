package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo de una empresa (repuestos, insumos).
// PartyID asocia el artículo a su proveedor y es obligatorio al crear o
// actualizar; solo queda vacío si el supplier fue eliminado después (la FK
// lo pone en NULL), y la siguiente actualización exige reasignarlo.
type Item struct {
	ID          string
	CompanyID   string
	PartyID     string // vacío = sin proveedor asignado
	Name        string
	Description string
	SKU         string
	Unit        string // pcs, set, kg...
	HSNCode     string // código HSN para GST
	BasePrice   decimal.Decimal // NUMERIC(12,2)
	GSTRate     decimal.Decimal // porcentaje 0..100, NUMERIC(5,2)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
