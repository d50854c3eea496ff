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
	"github.com/jhoicas/Manufactura-api/internal/application/bom"
	"github.com/jhoicas/Manufactura-api/internal/application/inventory"
	"github.com/jhoicas/Manufactura-api/internal/application/production"
	"github.com/jhoicas/Manufactura-api/internal/application/workorder"
	"github.com/jhoicas/Manufactura-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Manufactura-api/internal/interfaces/http"
	"github.com/jhoicas/Manufactura-api/pkg/config"
	"github.com/jhoicas/Manufactura-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	itemRepo := postgres.NewItemRepository(pool)
	siteRepo := postgres.NewSiteRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	uomRepo := postgres.NewUOMRepository(pool)
	bomRepo := postgres.NewBOMRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	balanceRepo := postgres.NewInventoryBalanceRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	workOrderUC := workorder.NewUseCase(workOrderRepo, siteRepo, itemRepo, uomRepo, warehouseRepo, bomRepo)
	bomUC := bom.NewUseCase(txRunner, bomRepo, itemRepo)
	reportUC := production.NewReportUseCase(txRunner, log)
	precheckUC := production.NewPrecheckUseCase(workOrderRepo, bomRepo, balanceRepo)
	reportQuery := production.NewReportQuery(productionRepo)
	balanceQuery := inventory.NewBalanceQuery(balanceRepo)

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
		Title:    "Manufactura API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		WorkOrderUC:  workOrderUC,
		BOMUC:        bomUC,
		ReportUC:     reportUC,
		PrecheckUC:   precheckUC,
		ReportQuery:  reportQuery,
		BalanceQuery: balanceQuery,
		JWTSecret:    cfg.JWT.Secret,
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
