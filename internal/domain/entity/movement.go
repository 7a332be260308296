package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada = "ENTRADA" // entrada de stock
	MovementTypeVenta   = "VENTA"   // venta (salida)
	MovementTypeMerma   = "MERMA"   // merma (pérdida)
)

// Movement es un registro inmutable del libro de movimientos. Total se
// congela al crearlo (Quantity × UnitPrice) y no se recalcula aunque el
// precio del producto cambie después. El libro es append-only: no existe
// operación de edición ni borrado de movimientos.
type Movement struct {
	ID        string
	ProductID string
	LotID     string // vacío para productos sin gestión de lotes
	UserID    string
	Type      string // ENTRADA, VENTA, MERMA
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal // snapshot del precio al momento del registro
	Total     decimal.Decimal // Quantity × UnitPrice, fijado al crear
	Note      string
	CreatedAt time.Time
}

// OutboundType indica si el tipo descuenta stock (VENTA o MERMA).
func OutboundType(t string) bool {
	return t == MovementTypeVenta || t == MovementTypeMerma
}

// ValidMovementType indica si el tipo es uno de los permitidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeVenta || t == MovementTypeMerma
}
