package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo. El stock de las
// respuestas siempre es derivado (lotes o libro de movimientos).
type ProductUseCase struct {
	repo      repository.ProductRepository
	movements repository.MovementRepository
	stockQ    *inventory.StockQueryService
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	movements repository.MovementRepository,
	stockQ *inventory.StockQueryService,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, movements: movements, stockQ: stockQ}
}

// Create crea un producto. Por defecto gestiona lotes salvo indicación contraria.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if !entity.ValidUnitMeasure(in.UnitMeasure) || !entity.ValidOrigin(in.Origin) {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() || in.MinStock.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	tracksLots := true
	if in.TracksLots != nil {
		tracksLots = *in.TracksLots
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		UnitMeasure: in.UnitMeasure,
		Origin:      in.Origin,
		CostPrice:   in.CostPrice,
		SalePrice:   in.SalePrice,
		MinStock:    in.MinStock,
		TracksLots:  tracksLots,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto con su stock derivado.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.toResponse(product)
}

// Update actualiza un producto. El código no se modifica; el stock jamás se
// edita directamente (solo vía movimientos).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.UnitMeasure != nil {
		if !entity.ValidUnitMeasure(*in.UnitMeasure) {
			return nil, domain.ErrInvalidInput
		}
		product.UnitMeasure = *in.UnitMeasure
	}
	if in.Origin != nil {
		if !entity.ValidOrigin(*in.Origin) {
			return nil, domain.ErrInvalidInput
		}
		product.Origin = *in.Origin
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.TracksLots != nil {
		product.TracksLots = *in.TracksLots
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// List lista productos por nombre con búsqueda opcional.
func (uc *ProductUseCase) List(search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto. Si tiene historial de movimientos el borrado se
// rechaza completo (domain.ErrHasHistory) y nada cambia.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	// El libro de movimientos es inmutable: un producto con historial no se
	// borra. La FK RESTRICT en la base respalda esta misma regla.
	hasHistory, err := uc.movements.ExistsByProduct(id)
	if err != nil {
		return err
	}
	if hasHistory {
		return domain.ErrHasHistory
	}
	return uc.repo.Delete(id)
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	stock, err := uc.stockQ.CurrentStock(p)
	if err != nil {
		return nil, err
	}
	nextExpiry, err := uc.stockQ.NextExpiry(p)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		UnitMeasure: p.UnitMeasure,
		Origin:      p.Origin,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		MinStock:    p.MinStock,
		TracksLots:  p.TracksLots,
		Stock:       stock,
		NextExpiry:  nextExpiry,
		LowStock:    stock.LessThanOrEqual(p.MinStock),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, nil
}
