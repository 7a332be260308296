package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

// HistoryRow es una fila del historial de movimientos ya unida con producto,
// lote y usuario. La produce la DB; los reportes la formatean.
type HistoryRow struct {
	MovementID string
	Date       time.Time
	Type       string
	Product    string
	Code       string
	Quantity   decimal.Decimal
	Unit       string // etiqueta legible de la unidad
	Username   string
	Total      decimal.Decimal
	Note       string
	LotNumber  string     // vacío si el movimiento no tiene lote
	LotExpiry  *time.Time // nil si el movimiento no tiene lote
}

// PlacementRow es una fila del reporte de ubicaciones: lote activo con su
// contenedor y zona (vacíos si está sin asignar).
type PlacementRow struct {
	Product    string
	Code       string
	LotNumber  string
	ExpiryDate time.Time
	Quantity   decimal.Decimal
	Unit       string
	Container  string
	Location   string
}

// AnalyticsRepository define las consultas de lectura para dashboards y
// reportes. Las implementaciones son read-only.
type AnalyticsRepository interface {
	// TotalByType suma la columna total del libro para un tipo de movimiento.
	TotalByType(ctx context.Context, movementType string) (decimal.Decimal, error)
	// CountMovementsBetween cuenta movimientos creados en [from, to).
	CountMovementsBetween(ctx context.Context, from, to time.Time) (int, error)
	// CountActiveLotsExpiringBy cuenta lotes con cantidad > 0 que vencen en la
	// fecha dada o antes.
	CountActiveLotsExpiringBy(ctx context.Context, date time.Time) (int, error)
	// ContainerOccupancy devuelve contenedores con lotes activos y el total.
	ContainerOccupancy(ctx context.Context) (used, total int, err error)
	// LatestUsers devuelve los últimos colaboradores creados.
	LatestUsers(ctx context.Context, limit int) ([]*entity.User, error)
	// HistoryRows devuelve el historial completo (search filtra por producto,
	// código o tipo), ordenado por fecha descendente.
	HistoryRows(ctx context.Context, search string) ([]HistoryRow, error)
	// PlacementRows devuelve los lotes activos con su ubicación, ordenados por
	// producto y vencimiento (search filtra por producto, lote, contenedor o zona).
	PlacementRows(ctx context.Context, search string) ([]PlacementRow, error)
}
