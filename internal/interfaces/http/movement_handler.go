package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/domain"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos
// (protegido): registro, consulta y baja automática por vencimiento.
type MovementHandler struct {
	register *inventory.RegisterMovementUseCase
	queries  *inventory.MovementQueryUseCase
	sweep    *inventory.ExpirySweepUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	register *inventory.RegisterMovementUseCase,
	queries *inventory.MovementQueryUseCase,
	sweep *inventory.ExpirySweepUseCase,
) *MovementHandler {
	return &MovementHandler{register: register, queries: queries, sweep: sweep}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  ENTRADA crea el lote si el producto gestiona lotes; VENTA y
// @Description  MERMA descuentan por FEFO (primero lo que vence primero),
// @Description  todo-o-nada. El producto se identifica por code o product_id.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if errResp := parseBody(c, &in); errResp != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}

	input := inventory.MovementInputDTO{
		UserID:      userID,
		ProductID:   in.ProductID,
		ProductCode: in.Code,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Note:        in.Note,
		LotNumber:   in.LotNumber,
		ContainerID: in.ContainerID,
	}
	if in.ExpiryDate != "" {
		expiry, err := time.Parse("2006-01-02", in.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiry_date debe ser YYYY-MM-DD"})
		}
		input.ExpiryDate = &expiry
	}

	if err := h.register.RegisterMovement(c.Context(), input); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrMissingLossReason:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LOSS_REASON", Message: "la merma requiere una razón"})
		case domain.ErrMissingExpiry:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_EXPIRY", Message: "la entrada requiere fecha de vencimiento"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case domain.ErrNoActiveLots:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_ACTIVE_LOTS", Message: "el producto no tiene lotes activos"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca por producto, código o tipo"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.queries.List(c.Query("search"), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ProcessExpirations godoc
// @Summary      Baja automática de lotes vencidos
// @Description  Por cada lote activo ya vencido genera una merma por la
// @Description  cantidad restante al costo y deja el lote en cero. Idempotente:
// @Description  una segunda ejecución no encuentra nada que procesar.
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProcessExpirationsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/movements/process-expirations [post]
func (h *MovementHandler) ProcessExpirations(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	processed, err := h.sweep.ProcessExpirations(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProcessExpirationsResponse{LotsWrittenOff: processed})
}
