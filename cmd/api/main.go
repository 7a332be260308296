package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/cvergaraq/bodega-api/internal/application/analytics"
	"github.com/cvergaraq/bodega-api/internal/application/auth"
	"github.com/cvergaraq/bodega-api/internal/application/inventory"
	"github.com/cvergaraq/bodega-api/internal/application/reports"
	"github.com/cvergaraq/bodega-api/internal/application/usecase"
	"github.com/cvergaraq/bodega-api/internal/infrastructure/export"
	"github.com/cvergaraq/bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/cvergaraq/bodega-api/internal/interfaces/http"
	"github.com/cvergaraq/bodega-api/pkg/config"
	"github.com/cvergaraq/bodega-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	containerRepo := postgres.NewContainerRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockQueries := inventory.NewStockQueryService(lotRepo, movementRepo)
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, productRepo)
	movementQueriesUC := inventory.NewMovementQueryUseCase(movementRepo)
	expirySweepUC := inventory.NewExpirySweepUseCase(txRunner)

	productUC := usecase.NewProductUseCase(productRepo, movementRepo, stockQueries)
	locationUC := usecase.NewLocationUseCase(locationRepo, containerRepo, lotRepo)
	userUC := usecase.NewUserUseCase(userRepo, movementRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, productRepo, stockQueries)
	reportsUC := reports.NewReportsUseCase(
		analyticsRepo,
		export.NewHistoryCSVExporter(),
		export.NewHistoryExcelExporter(),
		export.NewPlacementCSVExporter(),
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ProductUC:        productUC,
		LocationUC:       locationUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		MovementQueries:  movementQueriesUC,
		ExpirySweep:      expirySweepUC,
		DashboardUC:      dashboardUC,
		ReportsUC:        reportsUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
