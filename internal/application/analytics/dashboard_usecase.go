// Package analytics contiene los casos de uso de los dashboards de gerencia
// y de administración de bodega.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/application/auth"
	"github.com/cvergaraq/bodega-api/internal/application/dto"
	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

const latestUsersLimit = 5 // colaboradores recientes en el widget de gerencia

// maxCatalogScan acota el recorrido del catálogo al calcular stock bajo.
const maxCatalogScan = 1000

// DashboardUseCase arma los resúmenes de gerencia y operación. Todas sus
// fuentes son de solo lectura; ningún dashboard almacena stock: cada cifra se
// calcula fresca desde el estado persistido.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
	stockQ        *inventory.StockQueryService
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	productRepo repository.ProductRepository,
	stockQ *inventory.StockQueryService,
) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo, stockQ: stockQ}
}

// Management construye el resumen de gerencia: productos bajo stock mínimo,
// total histórico de ventas y mermas, ganancia neta y últimos colaboradores.
//
// Las tres consultas al repositorio de analítica corren en paralelo.
func (uc *DashboardUseCase) Management(ctx context.Context) (*dto.ManagementDashboardDTO, error) {
	type totalResult struct {
		total decimal.Decimal
		err   error
	}
	type usersResult struct {
		users []*entity.User
		err   error
	}

	salesCh := make(chan totalResult, 1)
	lossesCh := make(chan totalResult, 1)
	usersCh := make(chan usersResult, 1)

	go func() {
		total, err := uc.analyticsRepo.TotalByType(ctx, entity.MovementTypeVenta)
		salesCh <- totalResult{total, err}
	}()
	go func() {
		total, err := uc.analyticsRepo.TotalByType(ctx, entity.MovementTypeMerma)
		lossesCh <- totalResult{total, err}
	}()
	go func() {
		users, err := uc.analyticsRepo.LatestUsers(ctx, latestUsersLimit)
		usersCh <- usersResult{users, err}
	}()

	sales := <-salesCh
	losses := <-lossesCh
	users := <-usersCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: total ventas: %w", sales.err)
	}
	if losses.err != nil {
		return nil, fmt.Errorf("dashboard: total mermas: %w", losses.err)
	}
	if users.err != nil {
		return nil, fmt.Errorf("dashboard: últimos colaboradores: %w", users.err)
	}

	lowStock, err := uc.lowStockProducts()
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", err)
	}

	latest := make([]dto.UserResponse, 0, len(users.users))
	for _, u := range users.users {
		latest = append(latest, *auth.ToUserResponse(u))
	}

	return &dto.ManagementDashboardDTO{
		LowStockProducts: lowStock,
		TotalSales:       sales.total,
		TotalLosses:      losses.total,
		NetProfit:        sales.total.Sub(losses.total),
		LatestUsers:      latest,
	}, nil
}

// lowStockProducts recorre el catálogo y filtra los productos cuyo stock
// derivado está en o bajo su umbral mínimo.
func (uc *DashboardUseCase) lowStockProducts() ([]dto.LowStockProductDTO, error) {
	products, err := uc.productRepo.List("", maxCatalogScan, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockProductDTO, 0)
	for _, p := range products {
		stock, err := uc.stockQ.CurrentStock(p)
		if err != nil {
			return nil, err
		}
		if stock.LessThanOrEqual(p.MinStock) {
			out = append(out, dto.LowStockProductDTO{
				ProductID: p.ID,
				Code:      p.Code,
				Name:      p.Name,
				Stock:     stock,
				MinStock:  p.MinStock,
			})
		}
	}
	return out, nil
}

// Operations construye el resumen operativo: lotes vencidos, lotes por vencer
// en la próxima semana, ocupación de contenedores y movimientos de hoy.
func (uc *DashboardUseCase) Operations(ctx context.Context) (*dto.OperationsDashboardDTO, error) {
	today := entity.DateOnly(time.Now())
	tomorrow := today.AddDate(0, 0, 1)
	weekAhead := today.AddDate(0, 0, entity.CriticalWindowDays)

	expired, err := uc.analyticsRepo.CountActiveLotsExpiringBy(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("dashboard: lotes vencidos: %w", err)
	}
	expiringSoon, err := uc.analyticsRepo.CountActiveLotsExpiringBy(ctx, weekAhead)
	if err != nil {
		return nil, fmt.Errorf("dashboard: lotes por vencer: %w", err)
	}
	used, total, err := uc.analyticsRepo.ContainerOccupancy(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ocupación: %w", err)
	}
	occupancy := 0
	if total > 0 {
		occupancy = used * 100 / total
	}
	movementsToday, err := uc.analyticsRepo.CountMovementsBetween(ctx, today, tomorrow)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", err)
	}

	return &dto.OperationsDashboardDTO{
		ExpiredLots:      expired,
		LotsExpiringSoon: expiringSoon,
		OccupancyPct:     occupancy,
		MovementsToday:   movementsToday,
	}, nil
}
