package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"brewery/docs"
	"brewery/internal/config"
	"brewery/internal/database"
	"brewery/internal/database/migration"
	handlers "brewery/internal/http/handler"
	"brewery/internal/http/middleware"
	"brewery/internal/logging"
	"brewery/internal/otel"
	"brewery/internal/repository/postgres"
	"brewery/internal/service"
	"brewery/internal/validation"
)

// @title Brewery Beer API
// @version 2.0
// @description CRUD operations over the v2 beer resource.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal("tracing_init_failed", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("db_connect_failed", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
		logger.Fatal("db_migration_failed", zap.Error(err))
	}

	beerRepo := postgres.NewBeerPostgres(db)
	beerSvc := service.NewBeerService(beerRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal("metrics_init_failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// RequestID first so every later middleware and the error envelope can see it.
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, beerSvc, validation.New())

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("http_shutdown_failed", zap.Error(err))
		}
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	logger.Info("http_listening", zap.String("addr", addr), zap.String("host", cfg.AppHost))
	if err := app.Listen(addr); err != nil {
		logger.Fatal("http_listen_failed", zap.Error(err))
	}
}
