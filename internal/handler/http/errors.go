// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for request validation. Callers can match against them
// with [errors.Is]; the errors mapper translates them to HTTP 400.
var (
	// ErrInvalidJSONBody is returned when the request body is not valid JSON.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrMissingAppName is returned when the app_name field or query
	// parameter is absent or empty.
	ErrMissingAppName = errors.New("app_name is required")

	// ErrMissingEnv is returned when the env field or query parameter is
	// absent or empty.
	ErrMissingEnv = errors.New("env is required")

	// ErrMissingData is returned when the configuration payload is absent.
	ErrMissingData = errors.New("data is required")

	// ErrInvalidConfigurationID is returned when the {id} path parameter is
	// not a valid UUID.
	ErrInvalidConfigurationID = errors.New("invalid configuration id")
)
