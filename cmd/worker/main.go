package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"archiveapi/internal/bootstrap"
	"archiveapi/internal/config"
	"archiveapi/internal/database"
	"archiveapi/internal/logger"
	"archiveapi/internal/otel"
	"archiveapi/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, bootstrap.Location(cfg.Timezone))
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	shutdownTracing, err := otel.Init(ctx, "archiveapi-worker", zl)
	if err != nil {
		zl.Fatal("init tracing", zap.Error(err))
	}
	defer func() { _ = shutdownTracing(context.Background()) }()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()

	svcs := bootstrap.NewServices(db, cfg, zl)

	server := asynq.NewServer(bootstrap.RedisOpt(cfg.Redis), asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
		Logger:      zl.Sugar(),
	})
	processor := worker.NewProcessor(svcs.Archives, zl)
	mux := processor.Handler()

	go func() {
		<-ctx.Done()
		server.Shutdown()
	}()

	zl.Info("worker starting", zap.Int("concurrency", cfg.WorkerConcurrency))
	if err := server.Run(mux); err != nil {
		zl.Error("worker stopped", zap.Error(err))
		os.Exit(1)
	}
}
