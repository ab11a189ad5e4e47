// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/cache"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/notifier"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/models"
)

// createAttempts bounds how many times a create is retried when the version
// allocation loses its race against a concurrent create for the same key.
const createAttempts = 3

type configurationService struct {
	configurationRepository store.ConfigurationRepository
	cache                   cache.LatestCache
	publisher               notifier.Publisher

	logger *logger.Logger
}

// NewConfigurationService constructs the [ConfigurationService] over the
// given repository, cache, and publisher.
func NewConfigurationService(configurationRepository store.ConfigurationRepository, latestCache cache.LatestCache, publisher notifier.Publisher, logger *logger.Logger) ConfigurationService {
	return &configurationService{
		configurationRepository: configurationRepository,
		cache:                   latestCache,
		publisher:               publisher,
		logger:                  logger,
	}
}

func (s *configurationService) Create(ctx context.Context, key models.ConfigurationKey, data json.RawMessage) (models.Configuration, error) {
	created, err := s.createVersion(ctx, key, data)
	if err != nil {
		return models.Configuration{}, err
	}

	s.cache.Invalidate(key)
	s.publish(ctx, models.EventConfigurationCreated, created)

	return created, nil
}

func (s *configurationService) GetLatest(ctx context.Context, key models.ConfigurationKey) (models.Configuration, error) {
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	latest, err := s.configurationRepository.GetLatestActive(ctx, key)
	if err != nil {
		return models.Configuration{}, err
	}

	s.cache.Put(key, latest)

	return latest, nil
}

func (s *configurationService) GetByID(ctx context.Context, id string) (models.Configuration, error) {
	return s.configurationRepository.GetByID(ctx, id)
}

func (s *configurationService) List(ctx context.Context, key models.ConfigurationKey) ([]models.Configuration, error) {
	return s.configurationRepository.ListActive(ctx, key)
}

func (s *configurationService) Update(ctx context.Context, id string, data json.RawMessage) (models.Configuration, error) {
	existing, err := s.configurationRepository.GetByID(ctx, id)
	if err != nil {
		return models.Configuration{}, err
	}

	// an update is a create under the hood, but the caller's intent is a
	// single logical mutation: only CONFIG_UPDATED is emitted
	updated, err := s.createVersion(ctx, existing.Key(), data)
	if err != nil {
		return models.Configuration{}, err
	}

	s.cache.Invalidate(updated.Key())
	s.publish(ctx, models.EventConfigurationUpdated, updated)

	return updated, nil
}

func (s *configurationService) Delete(ctx context.Context, id string) (models.Configuration, error) {
	deleted, err := s.configurationRepository.Tombstone(ctx, id)
	if err != nil {
		return models.Configuration{}, err
	}

	s.cache.Invalidate(deleted.Key())
	s.publish(ctx, models.EventConfigurationDeleted, deleted)

	return deleted, nil
}

// createVersion appends a new version for key, retrying bounded times when a
// concurrent create wins the version allocation race.
func (s *configurationService) createVersion(ctx context.Context, key models.ConfigurationKey, data json.RawMessage) (models.Configuration, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		created, err := s.configurationRepository.CreateVersion(ctx, key, data)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return models.Configuration{}, err
		}

		lastErr = err
		log.Warn().
			Str("func", "configurationService.createVersion").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Int("attempt", attempt).
			Msg("version allocation conflict, retrying")
	}

	return models.Configuration{}, fmt.Errorf("%w: %w", ErrCreateRetriesExhausted, lastErr)
}

// publish emits the change event for cfg. Notification failures are logged
// and swallowed: the durable write has already happened, so the mutation
// must not be reported as failed.
func (s *configurationService) publish(ctx context.Context, eventType string, cfg models.Configuration) {
	log := logger.FromContext(ctx)

	event := models.ChangeEvent{
		EventType: eventType,
		AppName:   cfg.AppName,
		Env:       cfg.Env,
		Version:   cfg.Version,
		Timestamp: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().Err(err).
			Str("func", "configurationService.publish").
			Str("event_type", eventType).
			Str("app_name", cfg.AppName).
			Str("env", cfg.Env).
			Int64("version", cfg.Version).
			Msg("failed to publish change event")
	}
}
