package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=50"`
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description string          `json:"description"`
	UnitMeasure string          `json:"unit_measure" validate:"required,oneof=KG UN CJ AT MA BD LT"`
	Origin      string          `json:"origin" validate:"required,oneof=COMPRA PROPIO"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	MinStock    decimal.Decimal `json:"min_stock"`
	TracksLots  *bool           `json:"tracks_lots"` // nil = true (por defecto gestiona lotes)
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string          `json:"description"`
	UnitMeasure *string          `json:"unit_measure" validate:"omitempty,oneof=KG UN CJ AT MA BD LT"`
	Origin      *string          `json:"origin" validate:"omitempty,oneof=COMPRA PROPIO"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	MinStock    *decimal.Decimal `json:"min_stock"`
	TracksLots  *bool            `json:"tracks_lots"`
}

// ProductResponse salida de un producto con su stock derivado.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitMeasure string          `json:"unit_measure"`
	Origin      string          `json:"origin"`
	CostPrice   decimal.Decimal `json:"cost_price"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	MinStock    decimal.Decimal `json:"min_stock"`
	TracksLots  bool            `json:"tracks_lots"`
	Stock       decimal.Decimal `json:"stock"`                 // derivado, nunca almacenado
	NextExpiry  *time.Time      `json:"next_expiry,omitempty"` // nil si no hay lotes activos
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
