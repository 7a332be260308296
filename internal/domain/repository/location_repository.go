package repository

import "github.com/cvergaraq/bodega-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para zonas de bodega.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List() ([]*entity.Location, error)
	// Delete elimina la zona y sus contenedores en cascada.
	Delete(id string) error
}

// ContainerRepository define el puerto de persistencia para contenedores.
type ContainerRepository interface {
	Create(container *entity.Container) error
	GetByID(id string) (*entity.Container, error)
	ListByLocation(locationID string) ([]*entity.Container, error)
	// Delete anula la referencia en los lotes que lo usan (quedan sin asignar).
	Delete(id string) error
}
