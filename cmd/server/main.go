package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-vinted/internal/broker"
	"github.com/MKhiriev/go-vinted/internal/cache"
	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/gateway"
	"github.com/MKhiriev/go-vinted/internal/handler"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
	"github.com/MKhiriev/go-vinted/internal/server"
	"github.com/MKhiriev/go-vinted/internal/service"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/internal/workers"
	"github.com/MKhiriev/go-vinted/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const metricsNamespace = "vinted"

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("vinted-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, build, log); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, log *logger.Logger) error {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if err := storages.Close(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if cfg.Storage.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Storage.Redis)
		if err != nil {
			return fmt.Errorf("error connecting to redis: %w", err)
		}
		defer redisClient.Close()

		storages.OfferRepository = cache.NewOfferCache(storages.OfferRepository, redisClient, cfg.Storage.Redis.OfferTTL, log)
		log.Info().Str("address", cfg.Storage.Redis.Address).Msg("offer cache enabled")
	}

	images, err := gateway.New(ctx, cfg.Images, log)
	if err != nil {
		return fmt.Errorf("error creating image store: %w", err)
	}

	publisher := broker.NewNopPublisher()
	if cfg.Broker.NATSURL != "" {
		if publisher, err = broker.NewNATSPublisher(cfg.Broker, log); err != nil {
			return fmt.Errorf("error connecting to nats: %w", err)
		}
	}
	defer publisher.Close()

	appMetrics := metrics.New(metricsNamespace)

	cleanupWorker := workers.NewCleanupWorker(images, cfg.Workers, appMetrics, log)
	backgroundWorkers := workers.NewWorkers(cleanupWorker)
	defer backgroundWorkers.Wait()

	// workers stop with the server, even when it fails on its own
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	backgroundWorkers.Run(ctx)

	services, err := service.NewServices(service.Dependencies{
		Storages:   storages,
		Images:     images,
		Cleanup:    cleanupWorker,
		Publisher:  publisher,
		Metrics:    appMetrics,
		ImagesRoot: cfg.Images.Root,
		Build:      build,
	}, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, appMetrics, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer(ctx)
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
