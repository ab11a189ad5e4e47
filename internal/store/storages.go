package store

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
)

// Storages aggregates every repository the application persists data through.
type Storages struct {
	ConfigurationRepository ConfigurationRepository
}

// NewStorages connects to the configured database, applies pending
// migrations, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying database migrations")
		return nil, err
	}

	return &Storages{
		ConfigurationRepository: NewConfigurationRepository(db, log),
	}, nil
}
