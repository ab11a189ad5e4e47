package service

import (
	"github.com/MKhiriev/go-config-keeper/internal/cache"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/notifier"
	"github.com/MKhiriev/go-config-keeper/internal/store"
)

type Services struct {
	ConfigurationService ConfigurationService
}

func NewServices(storages *store.Storages, latestCache cache.LatestCache, publisher notifier.Publisher, logger *logger.Logger) *Services {
	return &Services{
		ConfigurationService: NewConfigurationService(storages.ConfigurationRepository, latestCache, publisher, logger),
	}
}
