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

	"github.com/printworks/stockroom-api/internal/application/auth"
	"github.com/printworks/stockroom-api/internal/application/inventory"
	"github.com/printworks/stockroom-api/internal/application/maintenance"
	"github.com/printworks/stockroom-api/internal/application/summary"
	"github.com/printworks/stockroom-api/internal/application/usecase"
	"github.com/printworks/stockroom-api/internal/infrastructure/mail"
	infrapdf "github.com/printworks/stockroom-api/internal/infrastructure/pdf"
	"github.com/printworks/stockroom-api/internal/infrastructure/postgres"
	httpRouter "github.com/printworks/stockroom-api/internal/interfaces/http"
	"github.com/printworks/stockroom-api/pkg/config"
	"github.com/printworks/stockroom-api/pkg/logger"
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

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	shelfRepo := postgres.NewShelfRepository(pool)
	printerRepo := postgres.NewPrinterRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	maintenanceRepo := postgres.NewMaintenanceOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := mail.NewSMTPNotifier(cfg.SMTP, log)
	pdfGenerator := infrapdf.NewStockReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo, shelfRepo)
	printerUC := usecase.NewPrinterUseCase(printerRepo)
	movementUC := inventory.NewMovementUseCase(movementRepo)
	shipmentUC := inventory.NewShipmentUseCase(txRunner, shipmentRepo, supplierRepo)
	maintenanceUC := maintenance.NewUseCase(maintenanceRepo, printerRepo, notifier, func(err error) {
		log.Warn().Err(err).Msg("notificación de mantenimiento fallida")
	})
	summaryUC := summary.NewUseCase(snapshotRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockroom API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		LocationUC:    locationUC,
		PrinterUC:     printerUC,
		MovementUC:    movementUC,
		ShipmentUC:    shipmentUC,
		MaintenanceUC: maintenanceUC,
		SummaryUC:     summaryUC,
		JWTSecret:     cfg.JWT.Secret,
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
