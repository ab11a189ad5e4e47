// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client SDK for the configuration server.
//
// The primary abstraction is [ConfigClient], which decouples consumers from
// the HTTP transport. The package ships an HTTP/REST implementation
// ([NewHTTPConfigClient]) with a local read-through cache so that repeated
// latest-configuration reads within the refresh interval avoid network calls.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-config-keeper/models"
)

// ConfigClient defines transport-agnostic access to the configuration server.
// Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ConfigClient interface {
	// Create registers a new configuration version for (appName, env) and
	// returns the stored row with its allocated version.
	Create(ctx context.Context, appName, env string, data json.RawMessage) (models.Configuration, error)

	// GetLatest returns the latest active configuration for (appName, env).
	// Results are served from the local cache within the refresh interval.
	GetLatest(ctx context.Context, appName, env string) (models.Configuration, error)

	// GetByID returns the active configuration with the given id.
	GetByID(ctx context.Context, id string) (models.Configuration, error)

	// List returns all active versions for (appName, env), ascending by
	// version.
	List(ctx context.Context, appName, env string) ([]models.Configuration, error)

	// Update appends a new version for the key of the configuration
	// identified by id.
	Update(ctx context.Context, id string, data json.RawMessage) (models.Configuration, error)

	// Delete tombstones the configuration identified by id.
	Delete(ctx context.Context, id string) error
}
