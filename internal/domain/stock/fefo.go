// Package stock contiene la lógica de dominio pura del inventario:
// la planificación FEFO (First-Expire-First-Out) de salidas sobre lotes.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

// Allocation indica cuánto consumir de un lote concreto.
type Allocation struct {
	Lot    *entity.Lot
	Amount decimal.Decimal
}

// PlanFEFO reparte una salida de quantity entre los lotes dados, agotando
// siempre el lote que vence primero antes de tocar el siguiente.
//
// lots debe venir ordenado por fecha de vencimiento ascendente, con fecha de
// creación como desempate determinista; ese orden ES la política de
// asignación. Los lotes en cero se saltan (nunca se re-seleccionan).
//
// Las cantidades asignadas suman exactamente quantity. Si el total disponible
// no alcanza, retorna domain.ErrInsufficientStock sin ninguna asignación: el
// caller no debe aplicar deducciones parciales.
func PlanFEFO(lots []*entity.Lot, quantity decimal.Decimal) ([]Allocation, error) {
	if !quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	remaining := quantity
	var plan []Allocation
	for _, lot := range lots {
		if remaining.IsZero() {
			break
		}
		if !lot.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		take := lot.Quantity
		if take.GreaterThan(remaining) {
			take = remaining
		}
		plan = append(plan, Allocation{Lot: lot, Amount: take})
		remaining = remaining.Sub(take)
	}
	if remaining.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInsufficientStock
	}
	return plan, nil
}

// Available suma la cantidad disponible de los lotes dados.
func Available(lots []*entity.Lot) decimal.Decimal {
	total := decimal.Zero
	for _, lot := range lots {
		total = total.Add(lot.Quantity)
	}
	return total
}
