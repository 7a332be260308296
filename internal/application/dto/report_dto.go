package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntryDTO fila del historial de movimientos para la vista de gerencia.
type HistoryEntryDTO struct {
	MovementID string          `json:"movement_id"`
	Date       time.Time       `json:"date"`
	Type       string          `json:"type"`
	Product    string          `json:"product"`
	Code       string          `json:"code"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Username   string          `json:"username"`
	Total      decimal.Decimal `json:"total"`
	Note       string          `json:"note,omitempty"`
	LotNumber  string          `json:"lot_number,omitempty"`
	LotExpiry  *time.Time      `json:"lot_expiry,omitempty"`
}

// PlacementEntryDTO fila del reporte de ubicaciones (lote activo + dónde está).
type PlacementEntryDTO struct {
	Product    string          `json:"product"`
	Code       string          `json:"code"`
	LotNumber  string          `json:"lot_number,omitempty"`
	ExpiryDate time.Time       `json:"expiry_date"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Container  string          `json:"container,omitempty"` // vacío = sin asignar
	Location   string          `json:"location,omitempty"`
	Alert      string          `json:"alert"`
}
