package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas (formato de venta).
const (
	UnitKilogramos = "KG"
	UnitUnidades   = "UN"
	UnitCajas      = "CJ"
	UnitAtados     = "AT"
	UnitMallas     = "MA"
	UnitBandejas   = "BD"
	UnitLitros     = "LT"
)

// Orígenes de producto.
const (
	OriginCompra = "COMPRA" // compra / reventa
	OriginPropio = "PROPIO" // elaboración propia
)

// Product representa un producto del catálogo de la bodega.
// El stock actual NUNCA se almacena: si TracksLots es true se deriva de la
// suma de cantidades de sus lotes; si es false, de entradas menos salidas en
// el libro de movimientos.
type Product struct {
	ID          string
	Code        string // código de barra o manual, único
	Name        string
	Description string
	UnitMeasure string          // KG, UN, CJ, AT, MA, BD, LT
	Origin      string          // COMPRA, PROPIO
	CostPrice   decimal.Decimal // precio de compra
	SalePrice   decimal.Decimal // precio público
	MinStock    decimal.Decimal // umbral de alerta de stock mínimo
	TracksLots  bool            // requiere lotes y fecha de vencimiento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var unitLabels = map[string]string{
	UnitKilogramos: "Kilogramos",
	UnitUnidades:   "Unidades",
	UnitCajas:      "Cajas",
	UnitAtados:     "Atados",
	UnitMallas:     "Mallas",
	UnitBandejas:   "Bandejas",
	UnitLitros:     "Litros",
}

// UnitMeasureLabel devuelve el nombre legible de la unidad de medida
// (usado en reportes y exportaciones CSV).
func (p *Product) UnitMeasureLabel() string {
	if label, ok := unitLabels[p.UnitMeasure]; ok {
		return label
	}
	return p.UnitMeasure
}

// ValidUnitMeasure indica si el código de unidad es uno de los permitidos.
func ValidUnitMeasure(code string) bool {
	_, ok := unitLabels[code]
	return ok
}

// ValidOrigin indica si el origen es uno de los permitidos.
func ValidOrigin(origin string) bool {
	return origin == OriginCompra || origin == OriginPropio
}
