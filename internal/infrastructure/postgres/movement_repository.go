package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, lot_id, user_id, type, quantity, unit_price, total, note, created_at`

// Create persiste un movimiento. Total llega ya congelado desde el caso de uso.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, nullIfEmpty(movement.LotID), movement.UserID,
		movement.Type, movement.Quantity, movement.UnitPrice, movement.Total,
		movement.Note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List busca movimientos por producto (nombre o código) o tipo, los más
// recientes primero.
func (r *MovementRepo) List(search string, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT m.id, m.product_id, m.lot_id, m.user_id, m.type, m.quantity,
		       m.unit_price, m.total, m.note, m.created_at
		FROM movements m
		JOIN products p ON p.id = m.product_id`
	args := []any{}
	if search != "" {
		query += ` WHERE p.name ILIKE '%' || $1 || '%' OR p.code ILIKE '%' || $1 || '%' OR m.type ILIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SumQuantityByTypes suma las cantidades de los tipos dados para un producto.
// Con esto se deriva el stock de productos sin gestión de lotes
// (entradas menos salidas), sin columna de stock almacenada.
func (r *MovementRepo) SumQuantityByTypes(productID string, types []string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM movements WHERE product_id = $1 AND type = ANY($2)`,
		productID, types).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum movements: %w", err)
	}
	return total, nil
}

// ExistsByProduct indica si el producto tiene movimientos registrados.
func (r *MovementRepo) ExistsByProduct(productID string) (bool, error) {
	return r.exists(`product_id`, productID)
}

// ExistsByUser indica si el usuario registró movimientos.
func (r *MovementRepo) ExistsByUser(userID string) (bool, error) {
	return r.exists(`user_id`, userID)
}

func (r *MovementRepo) exists(column, id string) (bool, error) {
	var found bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM movements WHERE `+column+` = $1)`, id).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("exists movement: %w", err)
	}
	return found, nil
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var lotID *string
	if err := row.Scan(&m.ID, &m.ProductID, &lotID, &m.UserID, &m.Type,
		&m.Quantity, &m.UnitPrice, &m.Total, &m.Note, &m.CreatedAt); err != nil {
		return nil, err
	}
	if lotID != nil {
		m.LotID = *lotID
	}
	return &m, nil
}
