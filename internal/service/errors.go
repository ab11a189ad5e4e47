package service

import "errors"

var (
	// ErrCreateRetriesExhausted is returned when every attempt to allocate a
	// version number lost its race against concurrent creates for the same key.
	ErrCreateRetriesExhausted = errors.New("version allocation retries exhausted")
)
