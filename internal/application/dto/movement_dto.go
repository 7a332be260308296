package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/movements.
// El producto se identifica por code (lector de barra) o por product_id.
// expiry_date (YYYY-MM-DD) es obligatorio en entradas de productos con lote.
type RegisterMovementRequest struct {
	Code        string          `json:"code,omitempty"`
	ProductID   string          `json:"product_id,omitempty"`
	Type        string          `json:"type" validate:"required,oneof=ENTRADA VENTA MERMA"`
	Quantity    decimal.Decimal `json:"quantity"`
	Note        string          `json:"note,omitempty"`
	LotNumber   string          `json:"lot_number,omitempty"`
	ExpiryDate  string          `json:"expiry_date,omitempty"`
	ContainerID string          `json:"container_id,omitempty"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	LotID     string          `json:"lot_id,omitempty"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ProcessExpirationsResponse resultado de la baja automática por vencimiento.
type ProcessExpirationsResponse struct {
	LotsWrittenOff int `json:"lots_written_off"`
}

// LotResponse salida de un lote con su estado de alerta.
type LotResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	LotNumber   string          `json:"lot_number,omitempty"`
	ExpiryDate  time.Time       `json:"expiry_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	ContainerID string          `json:"container_id,omitempty"`
	Alert       string          `json:"alert"` // VENCIDO, HOY, CRITICO, OK
	CreatedAt   time.Time       `json:"created_at"`
}
