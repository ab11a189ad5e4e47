package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const configurationColumns = "id, app_name, env, version, data, created_at, updated_at, deleted_at"

const (
	// createConfiguration allocates the next version number and inserts the
	// new row in one statement, so no version can be observed between the
	// MAX() read and the write. Two racing inserts for the same key compute
	// the same version; the unique index on (app_name, env, version) rejects
	// the loser, which the repository reports as ErrVersionConflict.
	// Tombstoned rows participate in MAX(): version numbers are never reused.
	createConfiguration = `INSERT INTO configurations (id, app_name, env, version, data, created_at, updated_at)
		SELECT $1, $2, $3, COALESCE(MAX(version), 0) + 1, $4, $5, $5
		FROM configurations
		WHERE app_name = $2 AND env = $3
		RETURNING ` + configurationColumns + `;`

	getConfigurationByID = `SELECT ` + configurationColumns + `
		FROM configurations
		WHERE id = $1 AND deleted_at IS NULL;`

	tombstoneConfiguration = `UPDATE configurations
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + configurationColumns + `;`
)

// buildGetLatestActiveQuery builds the SELECT returning the single
// highest-versioned non-tombstoned row for the given key.
func buildGetLatestActiveQuery(_ context.Context, key models.ConfigurationKey) (string, []any, error) {
	query, args, err := sq.
		Select("id", "app_name", "env", "version", "data", "created_at", "updated_at", "deleted_at").
		From("configurations").
		Where(sq.Eq{"app_name": key.AppName, "env": key.Env}).
		Where("deleted_at IS NULL").
		OrderBy("version DESC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListActiveQuery builds the SELECT returning every non-tombstoned row
// for the given key, ascending by version.
func buildListActiveQuery(_ context.Context, key models.ConfigurationKey) (string, []any, error) {
	query, args, err := sq.
		Select("id", "app_name", "env", "version", "data", "created_at", "updated_at", "deleted_at").
		From("configurations").
		Where(sq.Eq{"app_name": key.AppName, "env": key.Env}).
		Where("deleted_at IS NULL").
		OrderBy("version ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
