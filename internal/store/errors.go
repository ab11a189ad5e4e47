package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConfigurationNotFound is returned when a lookup targets a
	// configuration version that does not exist, is tombstoned, or when a key
	// has no active versions at all.
	ErrConfigurationNotFound = errors.New("configuration was not found")

	// ErrVersionConflict is returned when two concurrent creates for the same
	// configuration key race for the next version number and one of them loses
	// the unique-constraint check on (app_name, env, version). The losing
	// insert can safely be retried; the next attempt recomputes the version.
	ErrVersionConflict = errors.New("configuration version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan configuration row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan configuration rows")
)
