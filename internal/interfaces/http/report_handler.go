package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/application/reports"
)

// ReportHandler maneja el historial de movimientos, el reporte de ubicaciones
// y sus descargas CSV/Excel (protegido).
type ReportHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// History godoc
// @Summary      Historial de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca por producto, código o tipo"
// @Success      200     {array}  dto.HistoryEntryDTO
// @Router       /api/reports/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HistoryCSV godoc
// @Summary      Descargar historial en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        search  query  string  false  "Busca por producto, código o tipo"
// @Success      200  {string}  string
// @Router       /api/reports/history.csv [get]
func (h *ReportHandler) HistoryCSV(c *fiber.Ctx) error {
	data, err := h.uc.HistoryCSV(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendDownload(c, data, "text/csv; charset=utf-8", "historial_movimientos")
}

// HistoryExcel godoc
// @Summary      Descargar historial en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        search  query  string  false  "Busca por producto, código o tipo"
// @Success      200  {string}  string
// @Router       /api/reports/history.xlsx [get]
func (h *ReportHandler) HistoryExcel(c *fiber.Ctx) error {
	data, err := h.uc.HistoryExcel(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="historial_movimientos_%s.xlsx"`, time.Now().Format("20060102")))
	return c.Send(data)
}

// Placements godoc
// @Summary      Reporte de ubicaciones
// @Description  Lotes activos con su contenedor y zona, cada uno con su estado
// @Description  de alerta de vencimiento.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Busca por producto, lote, contenedor o zona"
// @Success      200     {array}  dto.PlacementEntryDTO
// @Router       /api/reports/placements [get]
func (h *ReportHandler) Placements(c *fiber.Ctx) error {
	out, err := h.uc.Placements(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PlacementsCSV godoc
// @Summary      Descargar reporte de ubicaciones en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        search  query  string  false  "Busca por producto, lote, contenedor o zona"
// @Success      200  {string}  string
// @Router       /api/reports/placements.csv [get]
func (h *ReportHandler) PlacementsCSV(c *fiber.Ctx) error {
	data, err := h.uc.PlacementsCSV(c.Context(), c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendDownload(c, data, "text/csv; charset=utf-8", "reporte_ubicaciones")
}

// sendDownload responde el archivo como adjunto con el nombre fechado.
func sendDownload(c *fiber.Ctx, data []byte, contentType, baseName string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_%s.csv"`, baseName, time.Now().Format("20060102")))
	return c.Send(data)
}
