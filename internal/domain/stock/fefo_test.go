package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// lote construye un lote con vencimiento a N días de hoy y la cantidad dada.
func lote(id string, expiresInDays int, qty float64) *entity.Lot {
	return &entity.Lot{
		ID:         id,
		ProductID:  "p-1",
		ExpiryDate: entity.DateOnly(time.Now()).AddDate(0, 0, expiresInDays),
		Quantity:   decimal.NewFromFloat(qty),
		CreatedAt:  time.Now(),
	}
}

func qty(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// ──────────────────────────────────────────────────────────────────────────────
// Tests PlanFEFO
// ──────────────────────────────────────────────────────────────────────────────

// El lote que vence primero se agota completo antes de tocar el siguiente.
func TestPlanFEFO_AgotaElQueVencePrimero(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 10), lote("b", 5, 10)}

	plan, err := stock.PlanFEFO(lots, qty(12))
	require.NoError(t, err)
	require.Len(t, plan, 2)

	assert.Equal(t, "a", plan[0].Lot.ID, "primero se consume el lote que vence antes")
	assert.True(t, plan[0].Amount.Equal(qty(10)), "el primer lote se agota completo")
	assert.Equal(t, "b", plan[1].Lot.ID)
	assert.True(t, plan[1].Amount.Equal(qty(2)), "el segundo lote cubre solo el resto")
}

// Una salida que cabe en el primer lote no toca los demás.
func TestPlanFEFO_SalidaParcialUnSoloLote(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 10), lote("b", 5, 10)}

	plan, err := stock.PlanFEFO(lots, qty(3))
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "a", plan[0].Lot.ID)
	assert.True(t, plan[0].Amount.Equal(qty(3)))
}

// Las cantidades asignadas suman exactamente lo pedido.
func TestPlanFEFO_AsignacionesSumanExacto(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 4), lote("b", 2, 4), lote("c", 3, 4)}
	requested := qty(9)

	plan, err := stock.PlanFEFO(lots, requested)
	require.NoError(t, err)

	total := decimal.Zero
	for _, alloc := range plan {
		total = total.Add(alloc.Amount)
	}
	assert.True(t, total.Equal(requested), "la suma del plan debe ser exactamente la cantidad pedida")
}

// Stock insuficiente: todo-o-nada, sin asignaciones parciales.
func TestPlanFEFO_InsuficienteRetornaSinPlan(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 5), lote("b", 5, 5)}

	plan, err := stock.PlanFEFO(lots, qty(11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, plan, "con stock insuficiente no debe haber ninguna asignación")
}

// Los lotes en cero se saltan, nunca se re-seleccionan.
func TestPlanFEFO_SaltaLotesEnCero(t *testing.T) {
	lots := []*entity.Lot{lote("agotado", 1, 0), lote("b", 5, 10)}

	plan, err := stock.PlanFEFO(lots, qty(4))
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, "b", plan[0].Lot.ID, "un lote agotado no participa del plan")
}

// Cantidades fraccionarias (KG) se reparten sin pérdida de precisión.
func TestPlanFEFO_CantidadesDecimales(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 0.5), lote("b", 3, 2.25)}

	plan, err := stock.PlanFEFO(lots, qty(1.75))
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.True(t, plan[0].Amount.Equal(qty(0.5)))
	assert.True(t, plan[1].Amount.Equal(qty(1.25)))
}

// Cantidad cero o negativa es entrada inválida.
func TestPlanFEFO_CantidadNoPositiva(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 10)}

	_, err := stock.PlanFEFO(lots, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = stock.PlanFEFO(lots, qty(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sin lotes no hay nada que asignar.
func TestPlanFEFO_SinLotes(t *testing.T) {
	_, err := stock.PlanFEFO(nil, qty(1))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestAvailable_SumaLotes(t *testing.T) {
	lots := []*entity.Lot{lote("a", 1, 2.5), lote("b", 2, 0), lote("c", 3, 7.5)}
	assert.True(t, stock.Available(lots).Equal(qty(10)))
}
