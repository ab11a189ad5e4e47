package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-config-keeper/models"
)

// ConfigurationRepository is the durable record of every configuration version
// ever created. Rows are append-only: versions are never mutated or physically
// removed, only tombstoned.
type ConfigurationRepository interface {
	// CreateVersion persists a new row for key carrying the next version
	// number (1 + the highest version ever assigned for the key, tombstoned
	// rows included). Version computation and insert happen in a single
	// statement; a concurrent allocation race surfaces as [ErrVersionConflict]
	// and may be retried by the caller.
	CreateVersion(ctx context.Context, key models.ConfigurationKey, data json.RawMessage) (models.Configuration, error)

	// GetLatestActive returns the highest-versioned row for key whose
	// tombstone is not set, or [ErrConfigurationNotFound].
	GetLatestActive(ctx context.Context, key models.ConfigurationKey) (models.Configuration, error)

	// GetByID returns the row with the given id. Tombstoned rows are invisible
	// to point lookups: both a missing and a tombstoned id yield
	// [ErrConfigurationNotFound].
	GetByID(ctx context.Context, id string) (models.Configuration, error)

	// ListActive returns all non-tombstoned rows for key, ascending by
	// version. An empty slice is not an error.
	ListActive(ctx context.Context, key models.ConfigurationKey) ([]models.Configuration, error)

	// Tombstone sets the deletion marker on the targeted row only and returns
	// the tombstoned row. Fails with [ErrConfigurationNotFound] if the id is
	// missing or already tombstoned.
	Tombstone(ctx context.Context, id string) (models.Configuration, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
