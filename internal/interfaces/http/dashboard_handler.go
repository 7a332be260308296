package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cvergaraq/bodega-api/internal/application/analytics"
	"github.com/cvergaraq/bodega-api/internal/application/dto"
)

// DashboardHandler maneja las peticiones HTTP de los dashboards (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Management godoc
// @Summary      Dashboard de gerencia
// @Description  Stock bajo mínimo, totales históricos de ventas y mermas,
// @Description  ganancia neta y últimos colaboradores.
// @Tags         dashboards
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ManagementDashboardDTO
// @Router       /api/dashboards/management [get]
func (h *DashboardHandler) Management(c *fiber.Ctx) error {
	out, err := h.uc.Management(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Operations godoc
// @Summary      Dashboard operativo de bodega
// @Description  Lotes vencidos, lotes por vencer esta semana, ocupación de
// @Description  contenedores y movimientos de hoy.
// @Tags         dashboards
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OperationsDashboardDTO
// @Router       /api/dashboards/operations [get]
func (h *DashboardHandler) Operations(c *fiber.Ctx) error {
	out, err := h.uc.Operations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
