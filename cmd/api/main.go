package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/application/session"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
	httpRouter "github.com/sreeramsuresh/steelapp-fe-sub017/internal/interfaces/http"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/config"
	"github.com/sreeramsuresh/steelapp-fe-sub017/pkg/logger"
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

	// Validación estructural de las configuraciones de documento. En
	// production se omite; en development una configuración con errores
	// impide el arranque.
	for _, dc := range formconfig.All() {
		if err := formconfig.ValidateAndLog(dc, log, cfg.App.Production()); err != nil {
			log.Fatal().Err(err).Str("doc_type", dc.DocumentType).Msg("configuración de documento inválida")
		}
	}

	sessions := session.NewStore(log, document.CalculatorOptions{
		VatInclusive:      cfg.Engine.VatInclusive,
		RoundingMode:      cfg.Engine.RoundingMode,
		CurrencyPrecision: int32(cfg.Engine.CurrencyPrecision),
		DiscountBeforeVat: true,
	})

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
		Sessions: sessions,
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
