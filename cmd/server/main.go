package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-keeper/internal/cache"
	"github.com/MKhiriev/go-config-keeper/internal/config"
	httphandler "github.com/MKhiriev/go-config-keeper/internal/handler/http"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/notifier"
	"github.com/MKhiriev/go-config-keeper/internal/server"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-config-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	latestCache := cache.New(cfg.Cache)
	defer latestCache.Stop()

	publisher := newPublisher(cfg.Notifier, log)
	defer publisher.Close() //nolint:errcheck

	services := service.NewServices(storages, latestCache, publisher, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newPublisher(cfg config.Notifier, log *logger.Logger) notifier.Publisher {
	if cfg.NATSURL == "" {
		log.Info().Msg("no NATS URL configured, change events will not be published")
		return &notifier.NoopPublisher{}
	}

	publisher, err := notifier.NewNATSPublisher(cfg.NATSURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to NATS")
	}

	return publisher
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
