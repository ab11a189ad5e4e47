package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/utils"
	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/jackc/pgerrcode"
)

// configurationRepository is the PostgreSQL-backed implementation of
// [ConfigurationRepository]. It executes all versioned-configuration
// operations directly against the "configurations" table using the embedded
// [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (app_name, env, version, id).
type configurationRepository struct {
	*DB
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewConfigurationRepository constructs a [ConfigurationRepository] backed by
// the provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewConfigurationRepository(db *DB, logger *logger.Logger) ConfigurationRepository {
	return &configurationRepository{
		DB:     db,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateVersion inserts a new configuration row for the given key.
//
// The next version number is computed inside the INSERT itself
// (COALESCE(MAX(version), 0) + 1 scoped to the key), so the read and the
// write are a single atomic statement. When two creates race on the same key
// the unique index on (app_name, env, version) rejects one of them and the
// method returns [ErrVersionConflict]; callers retry, recomputing the
// version on the next attempt.
func (c *configurationRepository) CreateVersion(ctx context.Context, key models.ConfigurationKey, data json.RawMessage) (models.Configuration, error) {
	log := logger.FromContext(ctx)

	id := c.uuid.Generate()
	now := time.Now().UTC()

	row := c.DB.QueryRowContext(ctx, createConfiguration, id, key.AppName, key.Env, []byte(data), now)

	saved, scanErr := scanConfiguration(row)
	if scanErr != nil {
		if postgresErrorCode(scanErr) == pgerrcode.UniqueViolation {
			log.Warn().
				Str("func", "configurationRepository.CreateVersion").
				Str("app_name", key.AppName).
				Str("env", key.Env).
				Msg("version allocation race detected, insert lost to a concurrent create")
			return models.Configuration{}, ErrVersionConflict
		}

		log.Err(scanErr).
			Str("func", "configurationRepository.CreateVersion").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Bool("retryable", c.errorClassificator.Classify(scanErr) == Retryable).
			Msg("failed to insert configuration version")
		return models.Configuration{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().
		Str("func", "configurationRepository.CreateVersion").
		Str("app_name", key.AppName).
		Str("env", key.Env).
		Int64("version", saved.Version).
		Str("id", saved.ID).
		Msg("created configuration version")

	return saved, nil
}

// GetLatestActive returns the highest-versioned non-tombstoned row for key.
//
// Returns [ErrConfigurationNotFound] when the key has no active versions —
// either because nothing was ever created for it or because every version
// has been tombstoned.
func (c *configurationRepository) GetLatestActive(ctx context.Context, key models.ConfigurationKey) (models.Configuration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLatestActiveQuery(ctx, key)
	if err != nil {
		log.Err(err).
			Str("func", "configurationRepository.GetLatestActive").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Msg("failed to create query")
		return models.Configuration{}, err
	}

	found, scanErr := scanConfiguration(c.DB.QueryRowContext(ctx, query, args...))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Configuration{}, ErrConfigurationNotFound
		}

		log.Err(scanErr).
			Str("func", "configurationRepository.GetLatestActive").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Msg("failed to query latest active configuration")
		return models.Configuration{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return found, nil
}

// GetByID returns the row with the given id.
//
// Tombstoned rows are invisible to point lookups: the query filters on
// deleted_at IS NULL, so a tombstoned id yields [ErrConfigurationNotFound]
// exactly like a missing one.
func (c *configurationRepository) GetByID(ctx context.Context, id string) (models.Configuration, error) {
	log := logger.FromContext(ctx)

	found, scanErr := scanConfiguration(c.DB.QueryRowContext(ctx, getConfigurationByID, id))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Configuration{}, ErrConfigurationNotFound
		}

		log.Err(scanErr).
			Str("func", "configurationRepository.GetByID").
			Str("id", id).
			Msg("failed to query configuration by id")
		return models.Configuration{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return found, nil
}

// ListActive returns every non-tombstoned row for key, ascending by version.
//
// Returns an empty slice when no active versions exist.
func (c *configurationRepository) ListActive(ctx context.Context, key models.ConfigurationKey) ([]models.Configuration, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListActiveQuery(ctx, key)
	if err != nil {
		log.Err(err).
			Str("func", "configurationRepository.ListActive").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Msg("failed to create query")
		return nil, err
	}

	rows, queryErr := c.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "configurationRepository.ListActive").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Msg("failed to execute query for listing active configurations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	results := make([]models.Configuration, 0, 8)

	for rows.Next() {
		item, scanErr := scanConfiguration(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "configurationRepository.ListActive").
				Str("app_name", key.AppName).
				Str("env", key.Env).
				Msg("failed to scan configuration row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "configurationRepository.ListActive").
			Str("app_name", key.AppName).
			Str("env", key.Env).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Tombstone sets deleted_at on the targeted row only.
//
// The UPDATE filters on deleted_at IS NULL, so tombstoning is not idempotent:
// a second call for the same id (or a call with an unknown id) affects no
// rows and returns [ErrConfigurationNotFound]. Other versions of the same key
// are untouched.
func (c *configurationRepository) Tombstone(ctx context.Context, id string) (models.Configuration, error) {
	log := logger.FromContext(ctx)

	deleted, scanErr := scanConfiguration(c.DB.QueryRowContext(ctx, tombstoneConfiguration, id))
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			log.Warn().
				Str("func", "configurationRepository.Tombstone").
				Str("id", id).
				Msg("configuration not found or already tombstoned")
			return models.Configuration{}, ErrConfigurationNotFound
		}

		log.Err(scanErr).
			Str("func", "configurationRepository.Tombstone").
			Str("id", id).
			Msg("failed to execute tombstone query")
		return models.Configuration{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().
		Str("func", "configurationRepository.Tombstone").
		Str("id", deleted.ID).
		Str("app_name", deleted.AppName).
		Str("env", deleted.Env).
		Int64("version", deleted.Version).
		Msg("tombstoned configuration version")

	return deleted, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfiguration(row rowScanner) (models.Configuration, error) {
	var item models.Configuration
	var data []byte
	var deletedAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.AppName,
		&item.Env,
		&item.Version,
		&data,
		&item.CreatedAt,
		&item.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return models.Configuration{}, err
	}

	item.Data = json.RawMessage(data)
	if deletedAt.Valid {
		t := deletedAt.Time
		item.DeletedAt = &t
	}

	return item, nil
}
