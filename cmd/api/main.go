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
	"github.com/norvantechnology/hisab-sub003/internal/application/billing"
	"github.com/norvantechnology/hisab-sub003/internal/domain/entity"
	"github.com/norvantechnology/hisab-sub003/internal/infrastructure/taxcatalog"
	httpRouter "github.com/norvantechnology/hisab-sub003/internal/interfaces/http"
	"github.com/norvantechnology/hisab-sub003/pkg/config"
	"github.com/norvantechnology/hisab-sub003/pkg/logger"
	"github.com/norvantechnology/hisab-sub003/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	catalog, err := taxcatalog.Parse(cfg.Billing.TaxTypes)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de impuestos")
	}
	log.Info().
		Int("tax_types", len(catalog.List())).
		Str("default_rate_type", cfg.Billing.DefaultRateType).
		Msg("catálogo de impuestos cargado")

	formatter := money.NewFormatter(cfg.Billing.DisplayLocale, cfg.Billing.DisplayPlaces)
	calculateInvoiceUC := billing.NewCalculateInvoiceUseCase(catalog, formatter, billing.Settings{
		DisplayPlaces:   cfg.Billing.DisplayPlaces,
		DefaultRateType: entity.RateType(cfg.Billing.DefaultRateType),
	}, log)

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
		Title:    "Hisab Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CalculateInvoice: calculateInvoiceUC,
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
