package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rajatsoni/vyapar-api/internal/application/billing"
	"github.com/rajatsoni/vyapar-api/internal/application/catalog"
	"github.com/rajatsoni/vyapar-api/internal/application/directory"
	"github.com/rajatsoni/vyapar-api/internal/application/purchasing"
	"github.com/rajatsoni/vyapar-api/internal/application/reports"
	"github.com/rajatsoni/vyapar-api/internal/application/sales"
	infrapdf "github.com/rajatsoni/vyapar-api/internal/infrastructure/pdf"
	"github.com/rajatsoni/vyapar-api/internal/infrastructure/postgres"
	httpRouter "github.com/rajatsoni/vyapar-api/internal/interfaces/http"
	"github.com/rajatsoni/vyapar-api/pkg/config"
	"github.com/rajatsoni/vyapar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	grRepo := postgres.NewGoodsReceiptRepository(pool)
	soRepo := postgres.NewSalesOrderRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(infrapdf.Business{
		Name:    cfg.App.Name,
		Address: os.Getenv("BUSINESS_ADDRESS"),
		Phone:   os.Getenv("BUSINESS_PHONE"),
		Email:   os.Getenv("BUSINESS_EMAIL"),
		GSTIN:   os.Getenv("BUSINESS_GSTIN"),
	})

	catalogUC := catalog.NewUseCase(txRunner, itemRepo, inventoryRepo, poRepo, soRepo, grRepo, reportRepo)
	supplierUC := directory.NewSupplierUseCase(supplierRepo, poRepo)
	customerUC := directory.NewCustomerUseCase(customerRepo, soRepo, invoiceRepo)
	purchasingUC := purchasing.NewUseCase(txRunner, poRepo, grRepo, itemRepo, supplierRepo)
	salesUC := sales.NewUseCase(txRunner, soRepo, deliveryRepo, itemRepo, inventoryRepo, customerRepo, invoiceRepo)
	billingUC := billing.NewUseCase(invoiceRepo, soRepo, customerRepo, itemRepo, pdfGenerator)
	reportsUC := reports.NewUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:    catalogUC,
		SupplierUC:   supplierUC,
		CustomerUC:   customerUC,
		PurchasingUC: purchasingUC,
		SalesUC:      salesUC,
		BillingUC:    billingUC,
		ReportsUC:    reportsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
