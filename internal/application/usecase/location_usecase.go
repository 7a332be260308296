package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// LocationUseCase casos de uso para zonas de bodega y sus contenedores.
type LocationUseCase struct {
	locationRepo  repository.LocationRepository
	containerRepo repository.ContainerRepository
	lotRepo       repository.LotRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(
	locationRepo repository.LocationRepository,
	containerRepo repository.ContainerRepository,
	lotRepo repository.LotRepository,
) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo, containerRepo: containerRepo, lotRepo: lotRepo}
}

// Create crea una zona.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	location := &entity.Location{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location, nil), nil
}

// GetByID obtiene una zona con sus contenedores.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	containers, err := uc.containerRepo.ListByLocation(id)
	if err != nil {
		return nil, err
	}
	return toLocationResponse(location, containers), nil
}

// Update renombra o re-describe una zona.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Description != nil {
		location.Description = *in.Description
	}
	if err := uc.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location, nil), nil
}

// List lista todas las zonas con sus contenedores.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		containers, err := uc.containerRepo.ListByLocation(location.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toLocationResponse(location, containers))
	}
	return out, nil
}

// Delete elimina la zona; sus contenedores caen en cascada y los lotes que
// los referenciaban quedan sin asignar.
func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return uc.locationRepo.Delete(id)
}

// AddContainer agrega un contenedor a la zona.
func (uc *LocationUseCase) AddContainer(locationID string, in dto.CreateContainerRequest) (*dto.ContainerResponse, error) {
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	container := &entity.Container{
		ID:         uuid.New().String(),
		Name:       in.Name,
		LocationID: locationID,
		CreatedAt:  time.Now(),
	}
	if err := uc.containerRepo.Create(container); err != nil {
		return nil, err
	}
	return toContainerResponse(container), nil
}

// RemoveContainer elimina un contenedor; los lotes sobreviven sin asignar.
func (uc *LocationUseCase) RemoveContainer(containerID string) error {
	container, err := uc.containerRepo.GetByID(containerID)
	if err != nil {
		return err
	}
	if container == nil {
		return domain.ErrNotFound
	}
	return uc.containerRepo.Delete(containerID)
}

// ContainerInventory devuelve los lotes activos del contenedor en orden FEFO,
// cada uno con su estado de alerta contra hoy.
func (uc *LocationUseCase) ContainerInventory(containerID string) (*dto.ContainerInventoryResponse, error) {
	container, err := uc.containerRepo.GetByID(containerID)
	if err != nil {
		return nil, err
	}
	if container == nil {
		return nil, nil
	}
	lots, err := uc.lotRepo.ListActiveByContainer(containerID)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	items := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		items = append(items, dto.LotResponse{
			ID:          lot.ID,
			ProductID:   lot.ProductID,
			LotNumber:   lot.LotNumber,
			ExpiryDate:  lot.ExpiryDate,
			Quantity:    lot.Quantity,
			ContainerID: lot.ContainerID,
			Alert:       lot.AlertStatus(today),
			CreatedAt:   lot.CreatedAt,
		})
	}
	return &dto.ContainerInventoryResponse{
		Container: *toContainerResponse(container),
		Lots:      items,
	}, nil
}

func toLocationResponse(l *entity.Location, containers []*entity.Container) *dto.LocationResponse {
	resp := &dto.LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
	}
	for _, c := range containers {
		resp.Containers = append(resp.Containers, *toContainerResponse(c))
	}
	return resp
}

func toContainerResponse(c *entity.Container) *dto.ContainerResponse {
	return &dto.ContainerResponse{
		ID:         c.ID,
		Name:       c.Name,
		LocationID: c.LocationID,
		CreatedAt:  c.CreatedAt,
	}
}
