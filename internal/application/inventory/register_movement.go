package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
	"github.com/cvergaraq/bodega-api/internal/domain/stock"
)

// Largo mínimo de la razón de una merma manual.
const minLossReasonLen = 5

// RegisterMovementUseCase registra movimientos de stock de forma transaccional.
// Las entradas crean el lote (si el producto gestiona lotes) y su movimiento;
// las salidas (VENTA/MERMA) consumen lotes en orden FEFO con bloqueo de fila
// (SELECT FOR UPDATE) y un movimiento por lote tocado, con Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInputDTO entrada para registrar un movimiento.
// El producto se identifica por ProductCode (lector de barra) o ProductID.
// ExpiryDate es obligatorio en entradas de productos con gestión de lotes.
type MovementInputDTO struct {
	UserID      string
	ProductID   string
	ProductCode string
	Type        string // ENTRADA, VENTA, MERMA
	Quantity    decimal.Decimal
	Note        string
	LotNumber   string     // opcional, solo entradas
	ExpiryDate  *time.Time // solo entradas con lote
	ContainerID string     // opcional, solo entradas con lote
}

// RegisterMovement valida la solicitud, resuelve el producto y delega en el
// flujo de entrada o en el asignador FEFO según el tipo.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) error {
	if !entity.ValidMovementType(input.Type) {
		return domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if input.UserID == "" {
		return domain.ErrInvalidInput
	}
	// La merma manual exige una razón con contenido real.
	if input.Type == entity.MovementTypeMerma && len(strings.TrimSpace(input.Note)) < minLossReasonLen {
		return domain.ErrMissingLossReason
	}

	product, err := uc.resolveProduct(input)
	if err != nil {
		return err
	}

	// Snapshot de precio: venta a precio público, entrada y merma al costo.
	unitPrice := product.CostPrice
	if input.Type == entity.MovementTypeVenta {
		unitPrice = product.SalePrice
	}

	now := time.Now()
	if entity.OutboundType(input.Type) {
		return uc.doOutbound(ctx, product, input, unitPrice, now)
	}
	return uc.doEntry(ctx, product, input, unitPrice, now)
}

// resolveProduct busca el producto por código o por ID.
func (uc *RegisterMovementUseCase) resolveProduct(input MovementInputDTO) (*entity.Product, error) {
	if input.ProductCode != "" {
		product, err := uc.productRepo.GetByCode(input.ProductCode)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		return product, nil
	}
	if input.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// doEntry registra una entrada: crea el lote si el producto gestiona lotes y
// agrega un movimiento ENTRADA (con referencia al lote creado).
func (uc *RegisterMovementUseCase) doEntry(
	ctx context.Context,
	product *entity.Product,
	input MovementInputDTO,
	unitPrice decimal.Decimal,
	now time.Time,
) error {
	if product.TracksLots && input.ExpiryDate == nil {
		return domain.ErrMissingExpiry
	}
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		lotRepo repository.LotRepository,
		_ repository.ProductRepository,
	) error {
		lotID := ""
		if product.TracksLots {
			lot := &entity.Lot{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				LotNumber:   input.LotNumber,
				ExpiryDate:  entity.DateOnly(*input.ExpiryDate),
				Quantity:    input.Quantity,
				ContainerID: input.ContainerID,
				CreatedAt:   now,
			}
			if err := lotRepo.Create(lot); err != nil {
				return err
			}
			lotID = lot.ID
		}
		return movRepo.Create(&entity.Movement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			LotID:     lotID,
			UserID:    input.UserID,
			Type:      entity.MovementTypeEntrada,
			Quantity:  input.Quantity,
			UnitPrice: unitPrice,
			Total:     input.Quantity.Mul(unitPrice),
			Note:      input.Note,
			CreatedAt: now,
		})
	})
}

// doOutbound registra una salida (VENTA o MERMA) dentro de una transacción.
// Para productos con lotes bloquea los lotes activos (FOR UPDATE), verifica
// disponibilidad total y aplica el plan FEFO: un movimiento por lote tocado.
// Para productos sin lotes verifica contra el libro y agrega un único
// movimiento sin lote.
func (uc *RegisterMovementUseCase) doOutbound(
	ctx context.Context,
	product *entity.Product,
	input MovementInputDTO,
	unitPrice decimal.Decimal,
	now time.Time,
) error {
	return uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		lotRepo repository.LotRepository,
		_ repository.ProductRepository,
	) error {
		if !product.TracksLots {
			return uc.outboundWithoutLots(movRepo, product, input, unitPrice, now)
		}

		// El bloqueo de fila serializa salidas concurrentes sobre los mismos
		// lotes: dos ventas no pueden pasar ambas la verificación de
		// disponibilidad contra un total ya obsoleto.
		lots, err := lotRepo.ListActiveByProductForUpdate(product.ID)
		if err != nil {
			return err
		}
		if len(lots) == 0 {
			return domain.ErrNoActiveLots
		}
		plan, err := stock.PlanFEFO(lots, input.Quantity)
		if err != nil {
			return err
		}
		for _, alloc := range plan {
			newQty := alloc.Lot.Quantity.Sub(alloc.Amount)
			if err := lotRepo.UpdateQuantity(alloc.Lot.ID, newQty); err != nil {
				return err
			}
			mov := &entity.Movement{
				ID:        uuid.New().String(),
				ProductID: product.ID,
				LotID:     alloc.Lot.ID,
				UserID:    input.UserID,
				Type:      input.Type,
				Quantity:  alloc.Amount,
				UnitPrice: unitPrice,
				Total:     alloc.Amount.Mul(unitPrice),
				Note:      input.Note,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
}

// outboundWithoutLots registra la salida de un producto sin gestión de lotes:
// disponibilidad contra el libro y exactamente un movimiento, sin lote.
func (uc *RegisterMovementUseCase) outboundWithoutLots(
	movRepo repository.MovementRepository,
	product *entity.Product,
	input MovementInputDTO,
	unitPrice decimal.Decimal,
	now time.Time,
) error {
	in, err := movRepo.SumQuantityByTypes(product.ID, []string{entity.MovementTypeEntrada})
	if err != nil {
		return err
	}
	out, err := movRepo.SumQuantityByTypes(product.ID, []string{entity.MovementTypeVenta, entity.MovementTypeMerma})
	if err != nil {
		return err
	}
	if in.Sub(out).LessThan(input.Quantity) {
		return domain.ErrInsufficientStock
	}
	return movRepo.Create(&entity.Movement{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		UserID:    input.UserID,
		Type:      input.Type,
		Quantity:  input.Quantity,
		UnitPrice: unitPrice,
		Total:     input.Quantity.Mul(unitPrice),
		Note:      input.Note,
		CreatedAt: now,
	})
}
