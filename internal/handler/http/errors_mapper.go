package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSONBody:        http.StatusBadRequest,
	ErrMissingAppName:         http.StatusBadRequest,
	ErrMissingEnv:             http.StatusBadRequest,
	ErrMissingData:            http.StatusBadRequest,
	ErrInvalidConfigurationID: http.StatusBadRequest,

	store.ErrConfigurationNotFound: http.StatusNotFound,

	service.ErrCreateRetriesExhausted: http.StatusInternalServerError,

	store.ErrVersionConflict:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
