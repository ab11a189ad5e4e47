package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/notifier"
	"github.com/MKhiriev/go-config-keeper/internal/workers"
)

func main() {
	log := logger.NewLogger("go-config-processor")

	cfg, err := config.GetProcessorConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	subscriber, err := notifier.NewNATSSubscriber(cfg.Notifier.NATSURL)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to NATS")
	}
	defer subscriber.Close() //nolint:errcheck

	processor, err := workers.NewChangeEventProcessor(subscriber, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error subscribing to change events")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go processor.Run()

	<-ctx.Done()
	processor.Shutdown()
	log.Info().Msg("processor Shutdown gracefully")
}
