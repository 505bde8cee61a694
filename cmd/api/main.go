package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"archiveapi/docs"
	"archiveapi/internal/bootstrap"
	"archiveapi/internal/config"
	"archiveapi/internal/database"
	"archiveapi/internal/database/migration"
	handlers "archiveapi/internal/http/handler"
	"archiveapi/internal/http/middleware"
	"archiveapi/internal/logger"
	"archiveapi/internal/otel"
	"archiveapi/internal/queue"
)

// @title Archive API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	loc := bootstrap.Location(cfg.Timezone)

	zl, err := logger.New(cfg.LogLevel, loc)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, "archiveapi", zl)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, zl, cfg.Database.Host); err != nil {
			zl.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	if len(cfg.Allocation.Prefixes) == 0 {
		zl.Warn("prefix table is empty, every unit will preview a blank location",
			zap.String("path", cfg.Allocation.PrefixTablePath))
	}

	svcs := bootstrap.NewServices(db, cfg, zl)

	queueClient := asynq.NewClient(bootstrap.RedisOpt(cfg.Redis))
	defer queueClient.Close()

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		zl.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// RequestID runs first so every later middleware and handler can read it
	app.Use(middleware.RequestID())
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(zl))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Services{
		DB:       db,
		Archives: svcs.Archives,
		Units:    svcs.Units,
		Renumber: queue.NewScheduler(queueClient),
	})

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
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + cfg.Port
	zl.Info("http server starting", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		zl.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	}
}
