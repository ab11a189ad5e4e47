package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("configuration not found")
	ErrInternalServerError = errors.New("internal server error")
)
