package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/application/usecase"
	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

func newProductFixture(movRepo *fakeMovementRepo, products ...*entity.Product) (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo(products...)
	stockQ := inventory.NewStockQueryService(&fakeLotRepo{}, movRepo)
	return usecase.NewProductUseCase(repo, movRepo, stockQ), repo
}

func catalogProduct(id string) *entity.Product {
	return &entity.Product{
		ID:          id,
		Code:        "QUE-" + id,
		Name:        "Queso fresco",
		UnitMeasure: entity.UnitKilogramos,
		Origin:      entity.OriginCompra,
		CostPrice:   decimal.NewFromInt(3000),
		SalePrice:   decimal.NewFromInt(4500),
		TracksLots:  false,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// El libro de movimientos es inmutable: un producto con historial no se borra
// y queda intacto.
func TestProductDelete_ConHistorialSeRechaza(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{ID: "m-1", ProductID: "p-1", UserID: "u-1", Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(5)},
	}}
	uc, repo := newProductFixture(movRepo, catalogProduct("p-1"))

	err := uc.Delete("p-1")
	assert.ErrorIs(t, err, domain.ErrHasHistory)

	survivor, _ := repo.GetByID("p-1")
	require.NotNil(t, survivor, "el producto con historial no se toca")
}

func TestProductDelete_SinHistorialElimina(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{ID: "m-1", ProductID: "otro", UserID: "u-1", Type: entity.MovementTypeEntrada, Quantity: decimal.NewFromInt(5)},
	}}
	uc, repo := newProductFixture(movRepo, catalogProduct("p-1"))

	require.NoError(t, uc.Delete("p-1"), "el historial de otros productos no bloquea")

	gone, _ := repo.GetByID("p-1")
	assert.Nil(t, gone)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc, _ := newProductFixture(&fakeMovementRepo{})
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
