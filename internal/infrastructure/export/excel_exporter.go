package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cvergaraq/bodega-api/internal/application/reports"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

var _ reports.HistoryExporter = (*HistoryExcelExporter)(nil)

// HistoryExcelExporter exporta el historial de movimientos a un libro Excel
// (.xlsx) con una hoja "Historial".
type HistoryExcelExporter struct{}

// NewHistoryExcelExporter construye el exportador Excel de historial.
func NewHistoryExcelExporter() *HistoryExcelExporter {
	return &HistoryExcelExporter{}
}

// ExportHistory genera el libro con la misma estructura de columnas que el
// CSV, pero con cantidades y totales como números para poder sumar en Excel.
func (e *HistoryExcelExporter) ExportHistory(rows []repository.HistoryRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Historial"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	for i, h := range historyHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set header: %w", err)
		}
	}

	for rowNo, r := range rows {
		lotNumber, lotExpiry := "N/A", "N/A"
		if r.LotNumber != "" {
			lotNumber = r.LotNumber
		}
		if r.LotExpiry != nil {
			lotExpiry = r.LotExpiry.Format(dateLayout)
		}
		quantity, _ := r.Quantity.Float64()
		total, _ := r.Total.Float64()
		values := []any{
			r.MovementID,
			r.Date.Format(dateLayout),
			r.Date.Format(timeLayout),
			r.Type,
			r.Product,
			r.Code,
			quantity,
			r.Unit,
			r.Username,
			total,
			r.Note,
			lotNumber,
			lotExpiry,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNo+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
