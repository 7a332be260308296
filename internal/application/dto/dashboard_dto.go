package dto

import "github.com/shopspring/decimal"

// LowStockProductDTO producto bajo su umbral de stock mínimo.
type LowStockProductDTO struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Stock     decimal.Decimal `json:"stock"`
	MinStock  decimal.Decimal `json:"min_stock"`
}

// ManagementDashboardDTO resumen para gerencia.
type ManagementDashboardDTO struct {
	LowStockProducts []LowStockProductDTO `json:"low_stock_products"`
	TotalSales       decimal.Decimal      `json:"total_sales"`
	TotalLosses      decimal.Decimal      `json:"total_losses"`
	NetProfit        decimal.Decimal      `json:"net_profit"` // ventas - mermas
	LatestUsers      []UserResponse       `json:"latest_users"`
}

// OperationsDashboardDTO resumen para administración de bodega.
type OperationsDashboardDTO struct {
	ExpiredLots      int `json:"expired_lots"`       // activos ya vencidos (incluye hoy)
	LotsExpiringSoon int `json:"lots_expiring_soon"` // activos que vencen dentro de 7 días
	OccupancyPct     int `json:"occupancy_pct"`      // % de contenedores con lotes activos
	MovementsToday   int `json:"movements_today"`
}
