package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cvergaraq/bodega-api/internal/application/analytics"
	"github.com/cvergaraq/bodega-api/internal/application/auth"
	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/application/reports"
	"github.com/cvergaraq/bodega-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	LocationUC       *usecase.LocationUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQueries  *inventory.MovementQueryUseCase
	ExpirySweep      *inventory.ExpirySweepUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportsUC        *reports.ReportsUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Cada grupo protegido declara la
// capacidad que exige; la política rol→capacidades vive en application/auth.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	operate := RequireCapability(auth.CapOperarBodega)
	administer := RequireCapability(auth.CapAdministrar)
	manage := RequireCapability(auth.CapGerencia)

	// Catálogo: lectura para todo rol de bodega, escritura para administración.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", operate, productHandler.List)
	products.Get("/:id", operate, productHandler.GetByID)
	products.Post("/", administer, productHandler.Create)
	products.Put("/:id", administer, productHandler.Update)
	products.Delete("/:id", administer, productHandler.Delete)

	// Libro de movimientos.
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQueries, deps.ExpirySweep)
	movements.Post("/", operate, movementHandler.Register)
	movements.Get("/", operate, movementHandler.List)
	movements.Post("/process-expirations", administer, movementHandler.ProcessExpirations)

	// Zonas y contenedores.
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations := protected.Group("/locations")
	locations.Get("/", operate, locationHandler.List)
	locations.Get("/:id", operate, locationHandler.GetByID)
	locations.Post("/", administer, locationHandler.Create)
	locations.Put("/:id", administer, locationHandler.Update)
	locations.Delete("/:id", administer, locationHandler.Delete)
	locations.Post("/:id/containers", administer, locationHandler.AddContainer)
	containers := protected.Group("/containers")
	containers.Get("/:id/inventory", operate, locationHandler.ContainerInventory)
	containers.Delete("/:id", administer, locationHandler.RemoveContainer)

	// Dashboards.
	dashboards := protected.Group("/dashboards")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboards.Get("/operations", administer, dashboardHandler.Operations)
	dashboards.Get("/management", manage, dashboardHandler.Management)

	// Reportes: ubicaciones para la operación, historial para gerencia.
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/placements", operate, reportHandler.Placements)
	reportsGroup.Get("/placements.csv", operate, reportHandler.PlacementsCSV)
	reportsGroup.Get("/history", manage, reportHandler.History)
	reportsGroup.Get("/history.csv", manage, reportHandler.HistoryCSV)
	reportsGroup.Get("/history.xlsx", manage, reportHandler.HistoryExcel)

	// Colaboradores (solo gerencia).
	users := protected.Group("/users", manage)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
