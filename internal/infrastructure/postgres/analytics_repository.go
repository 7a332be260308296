package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo implementación read-only de AnalyticsRepository. Trabaja
// directo sobre el pool: ninguna de sus consultas participa de transacciones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de lecturas analíticas.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// TotalByType suma la columna total (congelada al crear cada movimiento)
// para un tipo. Los dashboards derivan utilidad de ventas menos mermas.
func (r *AnalyticsRepo) TotalByType(ctx context.Context, movementType string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM movements WHERE type = $1`, movementType).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total by type: %w", err)
	}
	return total, nil
}

// CountMovementsBetween cuenta movimientos creados en [from, to).
func (r *AnalyticsRepo) CountMovementsBetween(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM movements WHERE created_at >= $1 AND created_at < $2`, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// CountActiveLotsExpiringBy cuenta lotes activos que vencen en la fecha dada
// o antes (incluye los ya vencidos).
func (r *AnalyticsRepo) CountActiveLotsExpiringBy(ctx context.Context, date time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lots WHERE quantity > 0 AND expiry_date <= $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count expiring lots: %w", err)
	}
	return count, nil
}

// ContainerOccupancy devuelve cuántos contenedores tienen al menos un lote
// activo y el total de contenedores.
func (r *AnalyticsRepo) ContainerOccupancy(ctx context.Context) (used, total int, err error) {
	query := `
		SELECT
			(SELECT COUNT(DISTINCT container_id) FROM lots WHERE quantity > 0 AND container_id IS NOT NULL),
			(SELECT COUNT(*) FROM containers)`
	if err := r.pool.QueryRow(ctx, query).Scan(&used, &total); err != nil {
		return 0, 0, fmt.Errorf("container occupancy: %w", err)
	}
	return used, total, nil
}

// LatestUsers devuelve los últimos colaboradores creados.
func (r *AnalyticsRepo) LatestUsers(ctx context.Context, limit int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("latest users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.PasswordHash,
			&u.Role, &u.Active, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// HistoryRows devuelve el historial de movimientos ya unido con producto,
// lote y usuario, el más reciente primero. search filtra por producto,
// código o tipo.
func (r *AnalyticsRepo) HistoryRows(ctx context.Context, search string) ([]repository.HistoryRow, error) {
	query := `
		SELECT m.id, m.created_at, m.type, p.name, p.code, m.quantity,
		       p.unit_measure, u.username, m.total, m.note,
		       l.lot_number, l.expiry_date
		FROM movements m
		JOIN products p ON p.id = m.product_id
		JOIN users u ON u.id = m.user_id
		LEFT JOIN lots l ON l.id = m.lot_id`
	args := []any{}
	if search != "" {
		query += ` WHERE p.name ILIKE '%' || $1 || '%' OR p.code ILIKE '%' || $1 || '%' OR m.type ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY m.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}
	defer rows.Close()
	var result []repository.HistoryRow
	for rows.Next() {
		var row repository.HistoryRow
		var unit string
		var lotNumber *string
		if err := rows.Scan(&row.MovementID, &row.Date, &row.Type, &row.Product, &row.Code,
			&row.Quantity, &unit, &row.Username, &row.Total, &row.Note,
			&lotNumber, &row.LotExpiry); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		row.Unit = (&entity.Product{UnitMeasure: unit}).UnitMeasureLabel()
		if lotNumber != nil {
			row.LotNumber = *lotNumber
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// PlacementRows devuelve los lotes activos con su contenedor y zona (vacíos
// si el lote está sin asignar), ordenados por producto y vencimiento.
func (r *AnalyticsRepo) PlacementRows(ctx context.Context, search string) ([]repository.PlacementRow, error) {
	query := `
		SELECT p.name, p.code, l.lot_number, l.expiry_date, l.quantity,
		       p.unit_measure, c.name, z.name
		FROM lots l
		JOIN products p ON p.id = l.product_id
		LEFT JOIN containers c ON c.id = l.container_id
		LEFT JOIN locations z ON z.id = c.location_id
		WHERE l.quantity > 0`
	args := []any{}
	if search != "" {
		query += ` AND (p.name ILIKE '%' || $1 || '%' OR l.lot_number ILIKE '%' || $1 || '%'
			OR c.name ILIKE '%' || $1 || '%' OR z.name ILIKE '%' || $1 || '%')`
		args = append(args, search)
	}
	query += ` ORDER BY p.name ASC, l.expiry_date ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("placement rows: %w", err)
	}
	defer rows.Close()
	var result []repository.PlacementRow
	for rows.Next() {
		var row repository.PlacementRow
		var unit string
		var lotNumber, container, location *string
		if err := rows.Scan(&row.Product, &row.Code, &lotNumber, &row.ExpiryDate,
			&row.Quantity, &unit, &container, &location); err != nil {
			return nil, fmt.Errorf("scan placement row: %w", err)
		}
		row.Unit = (&entity.Product{UnitMeasure: unit}).UnitMeasureLabel()
		if lotNumber != nil {
			row.LotNumber = *lotNumber
		}
		if container != nil {
			row.Container = *container
		}
		if location != nil {
			row.Location = *location
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
