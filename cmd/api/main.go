package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/analytics"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/auth"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/billing"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/usecase"
	"github.com/Iamyashjain/handy-sales-manager/internal/infrastructure/memory"
	httpRouter "github.com/Iamyashjain/handy-sales-manager/internal/interfaces/http"
	"github.com/Iamyashjain/handy-sales-manager/pkg/config"
	"github.com/Iamyashjain/handy-sales-manager/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	store := memory.NewStore()
	if cfg.Seed.Demo {
		if err := store.SeedDemo(); err != nil {
			log.Fatal().Err(err).Msg("seed demo data")
		}
		log.Info().Msg("demo dataset loaded")
	}

	customerRepo := store.Customers()
	productRepo := store.Products()
	saleRepo := store.Sales()
	paymentRepo := store.Payments()
	purchaseRepo := store.Purchases()
	inventoryRepo := store.Inventory()

	customerUC := billing.NewCustomerUseCase(customerRepo, saleRepo, paymentRepo, store)
	saleUC := billing.NewSaleUseCase(store, saleRepo, productRepo, store, log)
	paymentUC := billing.NewPaymentUseCase(store, paymentRepo, store, log)
	productUC := usecase.NewProductUseCase(productRepo, store)
	purchaseUC := usecase.NewPurchaseUseCase(purchaseRepo, productRepo, inventoryRepo, store, log)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	billUC := usecase.NewBillUseCase()
	dashboardUC := analytics.NewDashboardUseCase(customerRepo, productRepo, saleRepo, paymentRepo, purchaseRepo)

	authUC, err := auth.NewUseCase(cfg.Auth, cfg.JWT, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init auth")
	}

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
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		SaleUC:      saleUC,
		PaymentUC:   paymentUC,
		ProductUC:   productUC,
		PurchaseUC:  purchaseUC,
		InventoryUC: inventoryUC,
		BillUC:      billUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
