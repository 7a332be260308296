// Package reports contiene los casos de uso de historial de movimientos y
// reporte de ubicaciones, con sus exportaciones CSV y Excel.
package reports

import (
	"context"
	"time"

	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// ReportsUseCase genera los reportes de gerencia y bodega. Solo lectura.
type ReportsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	historyCSV    HistoryExporter
	historyExcel  HistoryExporter
	placementCSV  PlacementExporter
}

// NewReportsUseCase construye el caso de uso con sus exportadores.
func NewReportsUseCase(
	analyticsRepo repository.AnalyticsRepository,
	historyCSV HistoryExporter,
	historyExcel HistoryExporter,
	placementCSV PlacementExporter,
) *ReportsUseCase {
	return &ReportsUseCase{
		analyticsRepo: analyticsRepo,
		historyCSV:    historyCSV,
		historyExcel:  historyExcel,
		placementCSV:  placementCSV,
	}
}

// History devuelve el historial de movimientos (search filtra por producto,
// código o tipo), ordenado por fecha descendente.
func (uc *ReportsUseCase) History(ctx context.Context, search string) ([]dto.HistoryEntryDTO, error) {
	rows, err := uc.analyticsRepo.HistoryRows(ctx, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.HistoryEntryDTO{
			MovementID: r.MovementID,
			Date:       r.Date,
			Type:       r.Type,
			Product:    r.Product,
			Code:       r.Code,
			Quantity:   r.Quantity,
			Unit:       r.Unit,
			Username:   r.Username,
			Total:      r.Total,
			Note:       r.Note,
			LotNumber:  r.LotNumber,
			LotExpiry:  r.LotExpiry,
		})
	}
	return out, nil
}

// Placements devuelve los lotes activos con su ubicación física y estado de
// alerta contra hoy.
func (uc *ReportsUseCase) Placements(ctx context.Context, search string) ([]dto.PlacementEntryDTO, error) {
	rows, err := uc.analyticsRepo.PlacementRows(ctx, search)
	if err != nil {
		return nil, err
	}
	today := time.Now()
	out := make([]dto.PlacementEntryDTO, 0, len(rows))
	for _, r := range rows {
		lot := entity.Lot{ExpiryDate: r.ExpiryDate}
		out = append(out, dto.PlacementEntryDTO{
			Product:    r.Product,
			Code:       r.Code,
			LotNumber:  r.LotNumber,
			ExpiryDate: r.ExpiryDate,
			Quantity:   r.Quantity,
			Unit:       r.Unit,
			Container:  r.Container,
			Location:   r.Location,
			Alert:      lot.AlertStatus(today),
		})
	}
	return out, nil
}

// HistoryCSV exporta el historial completo a CSV (separado por ';', con BOM
// UTF-8 y fechas dd/mm/aaaa).
func (uc *ReportsUseCase) HistoryCSV(ctx context.Context, search string) ([]byte, error) {
	rows, err := uc.analyticsRepo.HistoryRows(ctx, search)
	if err != nil {
		return nil, err
	}
	return uc.historyCSV.ExportHistory(rows)
}

// HistoryExcel exporta el historial completo a un libro Excel.
func (uc *ReportsUseCase) HistoryExcel(ctx context.Context, search string) ([]byte, error) {
	rows, err := uc.analyticsRepo.HistoryRows(ctx, search)
	if err != nil {
		return nil, err
	}
	return uc.historyExcel.ExportHistory(rows)
}

// PlacementsCSV exporta el reporte de ubicaciones a CSV.
func (uc *ReportsUseCase) PlacementsCSV(ctx context.Context, search string) ([]byte, error) {
	rows, err := uc.analyticsRepo.PlacementRows(ctx, search)
	if err != nil {
		return nil, err
	}
	return uc.placementCSV.ExportPlacements(rows)
}
