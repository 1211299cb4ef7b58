package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
	"github.com/jhoicas/agromercado-api/internal/infrastructure/localstore"
	httpRouter "github.com/jhoicas/agromercado-api/internal/interfaces/http"
	"github.com/jhoicas/agromercado-api/pkg/config"
	"github.com/jhoicas/agromercado-api/pkg/logger"
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
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	store, err := localstore.Open(cfg.Store.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}
	defer store.Close()

	userRepo := localstore.NewUserRepository(store)
	productRepo := localstore.NewProductRepository(store)
	cartRepo := localstore.NewCartRepository(store)
	txRepo := localstore.NewTransactionRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	authUC := usecase.NewAuthUseCase(userRepo, sessionRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo)
	cartUC := usecase.NewCartUseCase(cartRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUseCase(cartRepo, productRepo, txRepo)
	ledgerUC := usecase.NewLedgerUseCase(txRepo, productRepo)

	if cfg.App.SeedDemo {
		seedUC := usecase.NewSeedUseCase(userRepo, productRepo)
		if err := seedUC.SeedIfEmpty(); err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demostración")
		}
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
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		CartUC:     cartUC,
		CheckoutUC: checkoutUC,
		LedgerUC:   ledgerUC,
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
