package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testProduct(tracksLots bool) *entity.Product {
	return &entity.Product{
		ID:          "p-1",
		Code:        "7801234567890",
		Name:        "Queso mantecoso",
		UnitMeasure: entity.UnitKilogramos,
		Origin:      entity.OriginCompra,
		CostPrice:   dec(4000),
		SalePrice:   dec(6500),
		TracksLots:  tracksLots,
	}
}

type fixture struct {
	uc       *inventory.RegisterMovementUseCase
	movRepo  *fakeMovementRepo
	lotRepo  *fakeLotRepo
	products *fakeProductRepo
}

func newFixture(product *entity.Product, lots ...*entity.Lot) *fixture {
	movRepo := &fakeMovementRepo{}
	lotRepo := &fakeLotRepo{lots: lots}
	products := newFakeProductRepo(product)
	runner := &fakeTxRunner{movRepo: movRepo, lotRepo: lotRepo, productRepo: products}
	return &fixture{
		uc:       inventory.NewRegisterMovementUseCase(runner, products),
		movRepo:  movRepo,
		lotRepo:  lotRepo,
		products: products,
	}
}

func activeLot(id string, expiresInDays int, quantity float64) *entity.Lot {
	return &entity.Lot{
		ID:         id,
		ProductID:  "p-1",
		ExpiryDate: entity.DateOnly(time.Now()).AddDate(0, 0, expiresInDays),
		Quantity:   dec(quantity),
		CreatedAt:  time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaCreaLoteYMovimiento(t *testing.T) {
	f := newFixture(testProduct(true))
	expiry := entity.DateOnly(time.Now()).AddDate(0, 0, 30)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:     testUserID,
		ProductID:  "p-1",
		Type:       entity.MovementTypeEntrada,
		Quantity:   dec(10),
		LotNumber:  "L-001",
		ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	require.Len(t, f.lotRepo.lots, 1, "la entrada debe crear el lote")
	lot := f.lotRepo.lots[0]
	assert.True(t, lot.Quantity.Equal(dec(10)))
	assert.Equal(t, "L-001", lot.LotNumber)

	require.Len(t, f.movRepo.movements, 1)
	mov := f.movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeEntrada, mov.Type)
	assert.Equal(t, lot.ID, mov.LotID, "el movimiento debe referenciar el lote creado")
	assert.True(t, mov.UnitPrice.Equal(dec(4000)), "la entrada se valoriza al costo")
	assert.True(t, mov.Total.Equal(dec(40000)), "total congelado = cantidad × precio")
}

func TestRegisterMovement_EntradaConLoteSinVencimientoFalla(t *testing.T) {
	f := newFixture(testProduct(true))

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  dec(10),
	})
	assert.ErrorIs(t, err, domain.ErrMissingExpiry)
	assert.Empty(t, f.movRepo.movements, "nada debe persistirse")
}

func TestRegisterMovement_EntradaSinLotesNoCreaLote(t *testing.T) {
	f := newFixture(testProduct(false))

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeEntrada,
		Quantity:  dec(5),
	})
	require.NoError(t, err)

	assert.Empty(t, f.lotRepo.lots, "producto sin gestión de lotes no crea lote")
	require.Len(t, f.movRepo.movements, 1)
	assert.Empty(t, f.movRepo.movements[0].LotID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas FEFO
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_VentaConsumeFEFO(t *testing.T) {
	// El lote "viejo" vence antes aunque fue creado después.
	f := newFixture(testProduct(true),
		activeLot("nuevo", 30, 10),
		activeLot("viejo", 2, 4),
	)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeVenta,
		Quantity:  dec(6),
	})
	require.NoError(t, err)

	viejo, _ := f.lotRepo.GetByID("viejo")
	nuevo, _ := f.lotRepo.GetByID("nuevo")
	assert.True(t, viejo.Quantity.IsZero(), "el lote que vence primero se agota")
	assert.True(t, nuevo.Quantity.Equal(dec(8)), "el siguiente cubre el resto")

	ventas := f.movRepo.byType(entity.MovementTypeVenta)
	require.Len(t, ventas, 2, "un movimiento por lote tocado")
	assert.Equal(t, "viejo", ventas[0].LotID)
	assert.True(t, ventas[0].Quantity.Equal(dec(4)))
	assert.Equal(t, "nuevo", ventas[1].LotID)
	assert.True(t, ventas[1].Quantity.Equal(dec(2)))
	// Venta a precio público.
	assert.True(t, ventas[0].UnitPrice.Equal(dec(6500)))
}

// A igual vencimiento desempata la fecha de ingreso: primero ingresado,
// primero consumido.
func TestRegisterMovement_VentaEmpateDeVencimientoConsumePorIngreso(t *testing.T) {
	expiry := entity.DateOnly(time.Now()).AddDate(0, 0, 5)
	base := time.Now()
	primero := &entity.Lot{
		ID: "primero", ProductID: "p-1", ExpiryDate: expiry,
		Quantity: dec(3), CreatedAt: base,
	}
	segundo := &entity.Lot{
		ID: "segundo", ProductID: "p-1", ExpiryDate: expiry,
		Quantity: dec(10), CreatedAt: base.Add(time.Hour),
	}
	// El más reciente va primero en el slice: el orden lo decide el repo.
	f := newFixture(testProduct(true), segundo, primero)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeVenta,
		Quantity:  dec(5),
	})
	require.NoError(t, err)

	assert.True(t, primero.Quantity.IsZero(), "el ingresado primero se agota")
	assert.True(t, segundo.Quantity.Equal(dec(8)))

	ventas := f.movRepo.byType(entity.MovementTypeVenta)
	require.Len(t, ventas, 2)
	assert.Equal(t, "primero", ventas[0].LotID)
	assert.Equal(t, "segundo", ventas[1].LotID)
}

func TestRegisterMovement_VentaInsuficienteNoCambiaNada(t *testing.T) {
	f := newFixture(testProduct(true), activeLot("a", 2, 3))

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeVenta,
		Quantity:  dec(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	lot, _ := f.lotRepo.GetByID("a")
	assert.True(t, lot.Quantity.Equal(dec(3)), "todo-o-nada: el lote no se toca")
	assert.Empty(t, f.movRepo.movements)
}

func TestRegisterMovement_VentaSinLotesActivos(t *testing.T) {
	f := newFixture(testProduct(true))

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeVenta,
		Quantity:  dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrNoActiveLots)
}

func TestRegisterMovement_MermaRequiereRazon(t *testing.T) {
	f := newFixture(testProduct(true), activeLot("a", 2, 10))

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeMerma,
		Quantity:  dec(1),
		Note:      "  x ", // espacios no cuentan
	})
	assert.ErrorIs(t, err, domain.ErrMissingLossReason)

	err = f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:    testUserID,
		ProductID: "p-1",
		Type:      entity.MovementTypeMerma,
		Quantity:  dec(1),
		Note:      "caja dañada en frío",
	})
	require.NoError(t, err)
	mermas := f.movRepo.byType(entity.MovementTypeMerma)
	require.Len(t, mermas, 1)
	assert.True(t, mermas[0].UnitPrice.Equal(dec(4000)), "la merma se valoriza al costo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos sin gestión de lotes (stock por libro)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_SalidaSinLotesContraLibro(t *testing.T) {
	f := newFixture(testProduct(false))
	ctx := context.Background()

	require.NoError(t, f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		UserID: testUserID, ProductID: "p-1", Type: entity.MovementTypeEntrada, Quantity: dec(10),
	}))

	// Disponible 10: una venta de 12 se rechaza, una de 7 pasa.
	err := f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		UserID: testUserID, ProductID: "p-1", Type: entity.MovementTypeVenta, Quantity: dec(12),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	require.NoError(t, f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		UserID: testUserID, ProductID: "p-1", Type: entity.MovementTypeVenta, Quantity: dec(7),
	}))

	ventas := f.movRepo.byType(entity.MovementTypeVenta)
	require.Len(t, ventas, 1, "exactamente un movimiento, sin lote")
	assert.Empty(t, ventas[0].LotID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones y resolución del producto
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_Validaciones(t *testing.T) {
	f := newFixture(testProduct(true), activeLot("a", 5, 10))
	ctx := context.Background()

	err := f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		UserID: testUserID, ProductID: "p-1", Type: "TRASLADO", Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo desconocido")

	err = f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		UserID: testUserID, ProductID: "p-1", Type: entity.MovementTypeVenta, Quantity: dec(0),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero")

	err = f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		ProductID: "p-1", Type: entity.MovementTypeVenta, Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin usuario")

	err = f.uc.RegisterMovement(ctx, inventory.MovementInputDTO{
		UserID: testUserID, ProductID: "inexistente", Type: entity.MovementTypeVenta, Quantity: dec(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El código de barra tiene prioridad sobre el ID al resolver el producto.
func TestRegisterMovement_ResuelvePorCodigo(t *testing.T) {
	f := newFixture(testProduct(true), activeLot("a", 5, 10))

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInputDTO{
		UserID:      testUserID,
		ProductCode: "7801234567890",
		Type:        entity.MovementTypeVenta,
		Quantity:    dec(2),
	})
	require.NoError(t, err)
	require.Len(t, f.movRepo.movements, 1)
	assert.Equal(t, "p-1", f.movRepo.movements[0].ProductID)
}
