package models

import (
	"encoding/json"
	"time"
)

// ConfigurationKey identifies a logical configuration stream. It is not a
// stored entity by itself: every persisted row carries the pair denormalised
// as two columns, and the key is reassembled wherever cache or notification
// routing needs it.
type ConfigurationKey struct {
	// AppName is the name of the application the configuration belongs to.
	AppName string `json:"app_name"`

	// Env is the deployment environment (e.g. "dev", "staging", "prod").
	Env string `json:"env"`
}

// Configuration is a single immutable version of a configuration document.
//
// Rows are append-only: an "update" creates a new row with the next version
// number for the same (AppName, Env) pair, and a "delete" only sets DeletedAt
// on the targeted row. Data and Version never change after creation.
type Configuration struct {
	// ID is the globally unique identifier assigned at creation.
	ID string `json:"id"`

	// AppName and Env form the configuration key of the row.
	AppName string `json:"app_name"`
	Env     string `json:"env"`

	// Version is a positive integer unique within the key. Versions form a
	// contiguous sequence starting at 1; tombstoned versions are never reused.
	Version int64 `json:"version"`

	// Data is the opaque configuration payload, stored and returned verbatim.
	Data json.RawMessage `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// DeletedAt is the tombstone marker. A non-nil value hides this row from
	// point lookups and from the "latest" computation; history is preserved.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Key returns the configuration key the row belongs to.
func (c Configuration) Key() ConfigurationKey {
	return ConfigurationKey{AppName: c.AppName, Env: c.Env}
}
