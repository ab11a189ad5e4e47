// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/mock"
	"github.com/MKhiriev/go-config-keeper/internal/service"
	"github.com/MKhiriev/go-config-keeper/internal/store"
	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testConfigurationID = "0198f2c1-0000-7000-8000-000000000001"

func newTestHandler(t *testing.T) (*Handler, *mock.MockConfigurationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockSvc := mock.NewMockConfigurationService(ctrl)
	h := NewHandler(&service.Services{ConfigurationService: mockSvc}, logger.Nop())
	return h, mockSvc
}

func testConfiguration(version int64) models.Configuration {
	now := time.Now().UTC()
	return models.Configuration{
		ID:        testConfigurationID,
		AppName:   "billing",
		Env:       "prod",
		Version:   version,
		Data:      json.RawMessage(`{"debug":true}`),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func doRequest(h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	router := h.Init()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── POST /api/configurations ─────────────────────────────────────────────────

func TestCreateHandler_Success(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	key := models.ConfigurationKey{AppName: "billing", Env: "prod"}
	mockSvc.EXPECT().
		Create(gomock.Any(), key, gomock.Any()).
		Return(testConfiguration(1), nil)

	body := []byte(`{"app_name":"billing","env":"prod","data":{"debug":true}}`)
	rec := doRequest(h, http.MethodPost, "/api/configurations", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Configuration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.Version)
	assert.JSONEq(t, `{"debug":true}`, string(got.Data))
}

func TestCreateHandler_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/configurations", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateHandler_MissingFields(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{"no app_name", `{"env":"prod","data":{}}`},
		{"no env", `{"app_name":"billing","data":{}}`},
		{"no data", `{"app_name":"billing","env":"prod"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, http.MethodPost, "/api/configurations", []byte(tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateHandler_RetriesExhausted(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Configuration{}, service.ErrCreateRetriesExhausted)

	body := []byte(`{"app_name":"billing","env":"prod","data":{}}`)
	rec := doRequest(h, http.MethodPost, "/api/configurations", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── GET /api/configurations/latest ───────────────────────────────────────────

func TestGetLatestHandler_Success(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	key := models.ConfigurationKey{AppName: "billing", Env: "prod"}
	mockSvc.EXPECT().
		GetLatest(gomock.Any(), key).
		Return(testConfiguration(5), nil)

	rec := doRequest(h, http.MethodGet, "/api/configurations/latest?app_name=billing&env=prod", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Configuration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(5), got.Version)
}

func TestGetLatestHandler_MissingQueryParams(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/configurations/latest?env=prod", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodGet, "/api/configurations/latest?app_name=billing", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLatestHandler_NotFound(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		GetLatest(gomock.Any(), gomock.Any()).
		Return(models.Configuration{}, store.ErrConfigurationNotFound)

	rec := doRequest(h, http.MethodGet, "/api/configurations/latest?app_name=ghost&env=prod", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

// ── GET /api/configurations/{id} ─────────────────────────────────────────────

func TestGetByIDHandler_Success(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		GetByID(gomock.Any(), testConfigurationID).
		Return(testConfiguration(2), nil)

	rec := doRequest(h, http.MethodGet, "/api/configurations/"+testConfigurationID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetByIDHandler_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/configurations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetByIDHandler_NotFound(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		GetByID(gomock.Any(), testConfigurationID).
		Return(models.Configuration{}, store.ErrConfigurationNotFound)

	rec := doRequest(h, http.MethodGet, "/api/configurations/"+testConfigurationID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── GET /api/configurations (list) ───────────────────────────────────────────

func TestListHandler_Success(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	key := models.ConfigurationKey{AppName: "billing", Env: "prod"}
	mockSvc.EXPECT().
		List(gomock.Any(), key).
		Return([]models.Configuration{testConfiguration(1), testConfiguration(2)}, nil)

	rec := doRequest(h, http.MethodGet, "/api/configurations?app_name=billing&env=prod", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Configuration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestListHandler_EmptyResult(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return([]models.Configuration{}, nil)

	rec := doRequest(h, http.MethodGet, "/api/configurations?app_name=billing&env=prod", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

// ── PUT /api/configurations/{id} ─────────────────────────────────────────────

func TestUpdateHandler_Success(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		Update(gomock.Any(), testConfigurationID, gomock.Any()).
		Return(testConfiguration(3), nil)

	rec := doRequest(h, http.MethodPut, "/api/configurations/"+testConfigurationID, []byte(`{"debug":false}`))
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Configuration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(3), got.Version)
}

func TestUpdateHandler_InvalidBody(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPut, "/api/configurations/"+testConfigurationID, []byte(`{broken`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodPut, "/api/configurations/"+testConfigurationID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateHandler_NotFound(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		Update(gomock.Any(), testConfigurationID, gomock.Any()).
		Return(models.Configuration{}, store.ErrConfigurationNotFound)

	rec := doRequest(h, http.MethodPut, "/api/configurations/"+testConfigurationID, []byte(`{}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── DELETE /api/configurations/{id} ──────────────────────────────────────────

func TestDeleteHandler_Success(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		Delete(gomock.Any(), testConfigurationID).
		Return(testConfiguration(2), nil)

	rec := doRequest(h, http.MethodDelete, "/api/configurations/"+testConfigurationID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteHandler_NotFound(t *testing.T) {
	h, mockSvc := newTestHandler(t)

	mockSvc.EXPECT().
		Delete(gomock.Any(), testConfigurationID).
		Return(models.Configuration{}, store.ErrConfigurationNotFound)

	rec := doRequest(h, http.MethodDelete, "/api/configurations/"+testConfigurationID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodDelete, "/api/configurations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
