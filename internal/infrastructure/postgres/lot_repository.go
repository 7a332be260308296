package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
//
// El orden FEFO (expiry_date ASC, created_at ASC, id ASC) está en las
// consultas, no en memoria: ese orden ES la política de asignación y el id
// como última llave lo hace totalmente determinista.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, product_id, lot_number, expiry_date, quantity, container_id, created_at`

const fefoOrder = ` ORDER BY expiry_date ASC, created_at ASC, id ASC`

// Create persiste un lote nuevo.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (` + lotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ProductID, nullIfEmpty(lot.LotNumber), lot.ExpiryDate,
		lot.Quantity, nullIfEmpty(lot.ContainerID), lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	lot, err := scanLot(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return lot, nil
}

// ListActiveByProductForUpdate bloquea los lotes activos del producto
// (SELECT FOR UPDATE) para serializar salidas concurrentes. Solo dentro de tx.
func (r *LotRepo) ListActiveByProductForUpdate(productID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE product_id = $1 AND quantity > 0` + fefoOrder + ` FOR UPDATE`
	return r.list(query, productID)
}

// ListActiveByContainer devuelve los lotes activos de un contenedor en orden FEFO.
func (r *LotRepo) ListActiveByContainer(containerID string) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE container_id = $1 AND quantity > 0` + fefoOrder
	return r.list(query, containerID)
}

// ListExpiredForUpdate devuelve bloqueados los lotes activos con vencimiento
// anterior a before (exclusivo). Lo usa la baja automática.
func (r *LotRepo) ListExpiredForUpdate(before time.Time) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE quantity > 0 AND expiry_date < $1` + fefoOrder + ` FOR UPDATE`
	return r.list(query, before)
}

// UpdateQuantity fija la cantidad restante de un lote.
func (r *LotRepo) UpdateQuantity(lotID string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET quantity = $2 WHERE id = $1`, lotID, quantity)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	return nil
}

// SumActiveByProduct devuelve el stock derivado de lotes del producto.
func (r *LotRepo) SumActiveByProduct(productID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM lots WHERE product_id = $1`, productID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum lots: %w", err)
	}
	return total, nil
}

// NextExpiry devuelve el vencimiento más próximo entre lotes activos, o nil.
func (r *LotRepo) NextExpiry(productID string) (*time.Time, error) {
	var next *time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT MIN(expiry_date) FROM lots WHERE product_id = $1 AND quantity > 0`, productID).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("next expiry: %w", err)
	}
	return next, nil
}

func (r *LotRepo) list(query string, args ...any) ([]*entity.Lot, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, lot)
	}
	return list, rows.Err()
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	var lotNumber, containerID *string
	if err := row.Scan(&l.ID, &l.ProductID, &lotNumber, &l.ExpiryDate,
		&l.Quantity, &containerID, &l.CreatedAt); err != nil {
		return nil, err
	}
	if lotNumber != nil {
		l.LotNumber = *lotNumber
	}
	if containerID != nil {
		l.ContainerID = *containerID
	}
	return &l, nil
}

// nullIfEmpty convierte cadena vacía a NULL para columnas opcionales.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
