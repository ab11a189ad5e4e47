// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// create handles POST /api/configurations. The body carries app_name, env,
// and the configuration payload; the allocated version comes back in the
// response.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateConfigurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("invalid JSON was passed")
		h.writeError(w, ErrInvalidJSONBody)
		return
	}

	if err := validateCreateRequest(req); err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("invalid create request")
		h.writeError(w, err)
		return
	}

	key := models.ConfigurationKey{AppName: req.AppName, Env: req.Env}
	created, err := h.services.ConfigurationService.Create(r.Context(), key, req.Data)
	if err != nil {
		log.Err(err).Str("func", "*Handler.create").Msg("error creating configuration")
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, created)
}

// getLatest handles GET /api/configurations/latest?app_name=&env=.
func (h *Handler) getLatest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := keyFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLatest").Msg("invalid query parameters")
		h.writeError(w, err)
		return
	}

	latest, err := h.services.ConfigurationService.GetLatest(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLatest").Msg("error getting latest configuration")
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, latest)
}

// getByID handles GET /api/configurations/{id}.
func (h *Handler) getByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getByID").Msg("invalid configuration id")
		h.writeError(w, err)
		return
	}

	found, err := h.services.ConfigurationService.GetByID(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getByID").Msg("error getting configuration by id")
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, found)
}

// list handles GET /api/configurations?app_name=&env=.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	key, err := keyFromQuery(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("invalid query parameters")
		h.writeError(w, err)
		return
	}

	configurations, err := h.services.ConfigurationService.List(r.Context(), key)
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("error listing configurations")
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, configurations)
}

// update handles PUT /api/configurations/{id}. The body is the raw
// configuration payload; a new version is appended for the addressed
// configuration's key.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("invalid configuration id")
		h.writeError(w, err)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("error reading request body")
		h.writeError(w, ErrInvalidJSONBody)
		return
	}
	if len(body) == 0 {
		h.writeError(w, ErrMissingData)
		return
	}
	if !json.Valid(body) {
		h.writeError(w, ErrInvalidJSONBody)
		return
	}

	updated, err := h.services.ConfigurationService.Update(r.Context(), id, body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("error updating configuration")
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

// delete handles DELETE /api/configurations/{id}.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idFromPath(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("invalid configuration id")
		h.writeError(w, err)
		return
	}

	if _, err := h.services.ConfigurationService.Delete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("error deleting configuration")
		h.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateCreateRequest(req models.CreateConfigurationRequest) error {
	if req.AppName == "" {
		return ErrMissingAppName
	}
	if req.Env == "" {
		return ErrMissingEnv
	}
	if len(req.Data) == 0 {
		return ErrMissingData
	}
	if !json.Valid(req.Data) {
		return ErrInvalidJSONBody
	}
	return nil
}

func keyFromQuery(r *http.Request) (models.ConfigurationKey, error) {
	appName := r.URL.Query().Get("app_name")
	if appName == "" {
		return models.ConfigurationKey{}, ErrMissingAppName
	}
	env := r.URL.Query().Get("env")
	if env == "" {
		return models.ConfigurationKey{}, ErrMissingEnv
	}
	return models.ConfigurationKey{AppName: appName, Env: env}, nil
}

func idFromPath(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if err := uuid.Validate(id); err != nil {
		return "", ErrInvalidConfigurationID
	}
	return id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writeJSON").Msg("error encoding response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	h.writeJSON(w, statusFromError(err), models.ErrorResponse{Error: err.Error()})
}
