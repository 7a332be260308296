package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// StockQueryService resuelve el stock derivado de un producto. El stock nunca
// se almacena: productos con lotes suman sus lotes; productos sin lotes suman
// entradas menos salidas del libro de movimientos.
type StockQueryService struct {
	lotRepo repository.LotRepository
	movRepo repository.MovementRepository
}

// NewStockQueryService construye el servicio de consultas de stock.
func NewStockQueryService(lotRepo repository.LotRepository, movRepo repository.MovementRepository) *StockQueryService {
	return &StockQueryService{lotRepo: lotRepo, movRepo: movRepo}
}

// CurrentStock devuelve el stock actual derivado del producto.
func (s *StockQueryService) CurrentStock(product *entity.Product) (decimal.Decimal, error) {
	if product.TracksLots {
		return s.lotRepo.SumActiveByProduct(product.ID)
	}
	in, err := s.movRepo.SumQuantityByTypes(product.ID, []string{entity.MovementTypeEntrada})
	if err != nil {
		return decimal.Zero, err
	}
	out, err := s.movRepo.SumQuantityByTypes(product.ID, []string{entity.MovementTypeVenta, entity.MovementTypeMerma})
	if err != nil {
		return decimal.Zero, err
	}
	return in.Sub(out), nil
}

// NextExpiry devuelve la fecha de vencimiento más próxima entre los lotes
// activos del producto, o nil si no gestiona lotes o no tiene lotes con stock.
func (s *StockQueryService) NextExpiry(product *entity.Product) (*time.Time, error) {
	if !product.TracksLots {
		return nil, nil
	}
	return s.lotRepo.NextExpiry(product.ID)
}
