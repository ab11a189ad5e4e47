package service

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_configuration_service.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-config-keeper/models"
)

// ConfigurationService orchestrates configuration mutations and reads across
// the store, the latest-value cache, and the change notifier.
//
// Every mutation follows the same ordering: durable write first, cache
// invalidation second, change notification last. Cache and notifier failures
// are logged and swallowed; only store failures propagate to the caller.
type ConfigurationService interface {
	// Create appends a new version for key. Version numbers are allocated by
	// the store; allocation races are retried internally.
	Create(ctx context.Context, key models.ConfigurationKey, data json.RawMessage) (models.Configuration, error)

	// GetLatest returns the highest-versioned active configuration for key,
	// served from the cache when possible.
	GetLatest(ctx context.Context, key models.ConfigurationKey) (models.Configuration, error)

	// GetByID returns the active configuration with the given id, bypassing
	// the cache.
	GetByID(ctx context.Context, id string) (models.Configuration, error)

	// List returns all active versions for key, ascending by version.
	List(ctx context.Context, key models.ConfigurationKey) ([]models.Configuration, error)

	// Update appends a new version for the key of the configuration
	// identified by id. The addressed version itself is never mutated.
	Update(ctx context.Context, id string, data json.RawMessage) (models.Configuration, error)

	// Delete tombstones the configuration identified by id. Other versions
	// of the same key remain visible.
	Delete(ctx context.Context, id string) (models.Configuration, error)
}
