package dto

import "time"

// CreateLocationRequest entrada para crear una zona de bodega.
type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description"`
}

// UpdateLocationRequest entrada para actualizar una zona.
type UpdateLocationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
}

// LocationResponse salida de una zona.
type LocationResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Containers  []ContainerResponse `json:"containers,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

// CreateContainerRequest entrada para agregar un contenedor a una zona.
type CreateContainerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// ContainerResponse salida de un contenedor.
type ContainerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LocationID string    `json:"location_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ContainerInventoryResponse lotes activos dentro de un contenedor.
type ContainerInventoryResponse struct {
	Container ContainerResponse `json:"container"`
	Lots      []LotResponse     `json:"lots"`
}
