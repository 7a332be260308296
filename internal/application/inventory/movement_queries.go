package inventory

import (
	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de lectura sobre el libro de movimientos.
type MovementQueryUseCase struct {
	movRepo repository.MovementRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo}
}

// List devuelve movimientos ordenados por fecha descendente, con búsqueda por
// producto, código o tipo.
func (uc *MovementQueryUseCase) List(search string, limit, offset int) (*dto.MovementListResponse, error) {
	movements, err := uc.movRepo.List(search, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		LotID:     m.LotID,
		UserID:    m.UserID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		UnitPrice: m.UnitPrice,
		Total:     m.Total,
		Note:      m.Note,
		CreatedAt: m.CreatedAt,
	}
}
