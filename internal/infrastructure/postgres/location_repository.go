package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

var (
	_ repository.LocationRepository  = (*LocationRepo)(nil)
	_ repository.ContainerRepository = (*ContainerRepo)(nil)
)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una zona nueva. Nombre duplicado → domain.ErrDuplicate.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `INSERT INTO locations (id, name, description, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Description, location.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una zona por ID.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	var l entity.Location
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, description, created_at FROM locations WHERE id = $1`, id).
		Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// Update actualiza nombre y descripción de la zona.
func (r *LocationRepo) Update(location *entity.Location) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE locations SET name = $2, description = $3 WHERE id = $1`,
		location.ID, location.Name, location.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List devuelve todas las zonas ordenadas por nombre.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, description, created_at FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Description, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina la zona. Los contenedores caen en cascada (FK ON DELETE
// CASCADE) y los lotes de esos contenedores quedan sin asignar.
func (r *LocationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

// ContainerRepo implementación de ContainerRepository sobre PostgreSQL.
type ContainerRepo struct {
	q Querier
}

// NewContainerRepository construye el adaptador.
func NewContainerRepository(q Querier) *ContainerRepo {
	return &ContainerRepo{q: q}
}

// Create persiste un contenedor. Nombre repetido dentro de la misma zona
// → domain.ErrDuplicate.
func (r *ContainerRepo) Create(container *entity.Container) error {
	query := `INSERT INTO containers (id, name, location_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		container.ID, container.Name, container.LocationID, container.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert container: %w", err)
	}
	return nil
}

// GetByID obtiene un contenedor por ID.
func (r *ContainerRepo) GetByID(id string) (*entity.Container, error) {
	var c entity.Container
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, location_id, created_at FROM containers WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.LocationID, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get container: %w", err)
	}
	return &c, nil
}

// ListByLocation devuelve los contenedores de una zona ordenados por nombre.
func (r *ContainerRepo) ListByLocation(locationID string) ([]*entity.Container, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, location_id, created_at FROM containers WHERE location_id = $1 ORDER BY name`,
		locationID)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Container
	for rows.Next() {
		var c entity.Container
		if err := rows.Scan(&c.ID, &c.Name, &c.LocationID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan container: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina el contenedor. La FK de lots es ON DELETE SET NULL: los
// lotes que lo referenciaban quedan sin asignar, nunca se pierden.
func (r *ContainerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM containers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete container: %w", err)
	}
	return nil
}
