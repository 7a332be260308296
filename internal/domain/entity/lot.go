package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de alerta de un lote respecto a su fecha de vencimiento.
const (
	AlertVencido = "VENCIDO" // venció antes de hoy
	AlertHoy     = "HOY"     // vence hoy
	AlertCritico = "CRITICO" // vence dentro de los próximos 7 días
	AlertOK      = "OK"
)

// Días de anticipación con que un lote pasa a estado CRITICO.
const CriticalWindowDays = 7

// Lot representa un lote físico de un producto con fecha de vencimiento.
// La cantidad nunca crece después del ingreso: solo la consumen las salidas
// FEFO o la baja automática por vencimiento. Un lote en cero se conserva
// como rastro de auditoría, nunca se borra.
type Lot struct {
	ID          string
	ProductID   string
	LotNumber   string    // # lote del proveedor, opcional
	ExpiryDate  time.Time // solo fecha, hora en cero
	Quantity    decimal.Decimal
	ContainerID string // vacío = sin asignar
	CreatedAt   time.Time
}

// AlertStatus clasifica el lote contra la fecha dada (normalmente hoy).
func (l *Lot) AlertStatus(today time.Time) string {
	expiry := DateOnly(l.ExpiryDate)
	today = DateOnly(today)
	switch {
	case expiry.Before(today):
		return AlertVencido
	case expiry.Equal(today):
		return AlertHoy
	case !expiry.After(today.AddDate(0, 0, CriticalWindowDays)):
		return AlertCritico
	default:
		return AlertOK
	}
}

// DateOnly trunca un instante a su fecha (medianoche local).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
