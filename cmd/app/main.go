package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	httpadapter "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/platform/observability"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	serviceName     = "merch-ordering"
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs := getConfigs()

	instruments, shutdownTelemetry, err := observability.Init(ctx, observability.Options{
		ServiceName:    serviceName,
		Environment:    configs.Environment,
		LogLevel:       configs.LogLevel,
		TracingEnabled: configs.OtelEnabled,
	})
	if err != nil {
		log.Fatalf("Error initialising telemetry: %v", err)
	}
	logger := instruments.Logger

	gormDB := mustGormOpen(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		logger,
		instruments.TracerProvider,
		instruments.MeterProvider,
	)

	router, err := httpadapter.NewRouter(ctx, httpadapter.RouterConfig{
		Engine:    app.CreateLifecycleEngine(),
		Logger:    logger,
		JWTSecret: []byte(configs.JWTSecret),
		JWTIssuer: configs.JWTIssuer,
	})
	if err != nil {
		log.Fatalf("Error building HTTP router: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP server listening", "port", configs.HTTPPort)
		if err := router.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		jobManager.StopAll()
		return errors.Join(
			router.Shutdown(shutdownCtx),
			shutdownTelemetry(shutdownCtx),
		)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

func getConfigs() cmd.Config {
	// The .env file is optional; real deployments pass the environment directly.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return config
}

func mustGormOpen(config cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		log.Fatalf("connection to postgres through gorm\n: %s", err)
	}
	return gormDB
}
