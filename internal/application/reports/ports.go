package reports

import "github.com/cvergaraq/bodega-api/internal/domain/repository"

// HistoryExporter serializa el historial de movimientos a un formato
// descargable (CSV, Excel). Lo implementa la infraestructura.
type HistoryExporter interface {
	ExportHistory(rows []repository.HistoryRow) ([]byte, error)
}

// PlacementExporter serializa el reporte de ubicaciones.
type PlacementExporter interface {
	ExportPlacements(rows []repository.PlacementRow) ([]byte, error)
}
