package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// ExpirySweepUseCase da de baja los lotes vencidos: por cada lote activo con
// vencimiento hasta hoy crea UNA merma por la cantidad completa restante,
// valorizada al costo del producto, y deja el lote en cero. A diferencia del
// asignador FEFO, nunca consume un lote parcialmente.
type ExpirySweepUseCase struct {
	txRunner TxRunner
}

// NewExpirySweepUseCase construye el caso de uso.
func NewExpirySweepUseCase(txRunner TxRunner) *ExpirySweepUseCase {
	return &ExpirySweepUseCase{txRunner: txRunner}
}

// ProcessExpirations ejecuta la baja automática y devuelve cuántos lotes se
// procesaron. Cero lotes vencidos es un resultado válido, no un error.
// Corre en una sola transacción: o se dan de baja todos, o ninguno.
func (uc *ExpirySweepUseCase) ProcessExpirations(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, domain.ErrInvalidInput
	}
	now := time.Now()
	tomorrow := entity.DateOnly(now).AddDate(0, 0, 1)

	processed := 0
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		lotRepo repository.LotRepository,
		productRepo repository.ProductRepository,
	) error {
		lots, err := lotRepo.ListExpiredForUpdate(tomorrow)
		if err != nil {
			return err
		}
		for _, lot := range lots {
			product, err := productRepo.GetByID(lot.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			mov := &entity.Movement{
				ID:        uuid.New().String(),
				ProductID: lot.ProductID,
				LotID:     lot.ID,
				UserID:    userID,
				Type:      entity.MovementTypeMerma,
				Quantity:  lot.Quantity,
				UnitPrice: product.CostPrice,
				Total:     lot.Quantity.Mul(product.CostPrice),
				Note:      fmt.Sprintf("BAJA AUTOMÁTICA POR VENCIMIENTO (Venció el %s)", lot.ExpiryDate.Format("02/01/2006")),
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := lotRepo.UpdateQuantity(lot.ID, decimal.Zero); err != nil {
				return err
			}
			processed++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return processed, nil
}
