// Package export implementa los exportadores de reportes (CSV y Excel).
//
// Los CSV van separados por ';' y con BOM UTF-8 para que Excel en
// configuración regional latina los abra directo, con acentos y columnas
// correctas. Fechas dd/mm/aaaa.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/cvergaraq/bodega-api/internal/application/reports"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

const (
	utf8BOM    = "\ufeff"
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

var (
	_ reports.HistoryExporter   = (*HistoryCSVExporter)(nil)
	_ reports.PlacementExporter = (*PlacementCSVExporter)(nil)
)

var historyHeaders = []string{
	"ID", "Fecha", "Hora", "Tipo", "Producto", "SKU", "Cantidad", "Unidad",
	"Usuario", "Total ($)", "Observación", "Lote", "Vencimiento",
}

// HistoryCSVExporter exporta el historial de movimientos a CSV.
type HistoryCSVExporter struct{}

// NewHistoryCSVExporter construye el exportador CSV de historial.
func NewHistoryCSVExporter() *HistoryCSVExporter {
	return &HistoryCSVExporter{}
}

// ExportHistory serializa las filas del historial. Movimientos sin lote
// llevan "N/A" en las columnas de lote y vencimiento.
func (e *HistoryCSVExporter) ExportHistory(rows []repository.HistoryRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(historyHeaders); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range rows {
		lotNumber, lotExpiry := "N/A", "N/A"
		if r.LotNumber != "" {
			lotNumber = r.LotNumber
		}
		if r.LotExpiry != nil {
			lotExpiry = r.LotExpiry.Format(dateLayout)
		}
		record := []string{
			r.MovementID,
			r.Date.Format(dateLayout),
			r.Date.Format(timeLayout),
			r.Type,
			r.Product,
			r.Code,
			r.Quantity.String(),
			r.Unit,
			r.Username,
			r.Total.StringFixed(2),
			r.Note,
			lotNumber,
			lotExpiry,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

var placementHeaders = []string{
	"Producto", "Código SKU", "N° Lote", "Vencimiento", "Cantidad", "Unidad",
	"Ubicación (Contenedor)", "Zona (Lugar)",
}

// PlacementCSVExporter exporta el reporte de ubicaciones a CSV.
type PlacementCSVExporter struct{}

// NewPlacementCSVExporter construye el exportador CSV de ubicaciones.
func NewPlacementCSVExporter() *PlacementCSVExporter {
	return &PlacementCSVExporter{}
}

// ExportPlacements serializa los lotes activos con su ubicación. Lotes sin
// contenedor salen como "Sin Asignar" / "-".
func (e *PlacementCSVExporter) ExportPlacements(rows []repository.PlacementRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(placementHeaders); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}
	for _, r := range rows {
		container, location := r.Container, r.Location
		if container == "" {
			container, location = "Sin Asignar", "-"
		}
		lotNumber := r.LotNumber
		if lotNumber == "" {
			lotNumber = "S/N"
		}
		record := []string{
			r.Product,
			r.Code,
			lotNumber,
			r.ExpiryDate.Format(dateLayout),
			r.Quantity.String(),
			r.Unit,
			container,
			location,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
