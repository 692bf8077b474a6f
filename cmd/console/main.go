// Consola local de administración del ERP.
//
// @title          ERP Admin Console
// @version        1.0
// @description    Consola local que consume el backend REST del ERP: productos, pedidos, distribuciones, maquilados y usuarios.
// @BasePath       /
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

	"github.com/lecoq/erp-admin/docs"
	"github.com/lecoq/erp-admin/internal/bootstrap"
	httpRouter "github.com/lecoq/erp-admin/internal/interfaces/http"
	"github.com/lecoq/erp-admin/pkg/config"
	"github.com/lecoq/erp-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando consola")

	deps, err := bootstrap.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar dependencias")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	docs.SwaggerInfo.Host = cfg.HTTP.Addr()
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    docs.SwaggerInfo.Title,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": cfg.API.BaseURL})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         deps.AuthUC,
		ProductoUC:     deps.ProductoUC,
		PedidoUC:       deps.PedidoUC,
		PedidoPDF:      deps.PedidoPDF,
		DistribucionUC: deps.DistribucionUC,
		MaquiladoUC:    deps.MaquiladoUC,
		UsuarioUC:      deps.UsuarioUC,
		DashboardUC:    deps.DashboardUC,
		Metrics:        deps.Metrics.Handler(),
	})

	addr := cfg.HTTP.Addr()
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Str("addr", addr).Msg("servidor detenido")
		}
	}()
	log.Info().Str("addr", addr).Msg("consola escuchando")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando consola")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
