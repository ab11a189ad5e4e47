// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/go-resty/resty/v2"
	"github.com/jellydator/ttlcache/v3"
)

// HTTPClientConfig configures [NewHTTPConfigClient].
type HTTPClientConfig struct {
	// BaseURL is the configuration server address
	// (e.g. "http://localhost:8080").
	BaseURL string

	// Timeout bounds every request issued by the client.
	Timeout time.Duration

	// RefreshInterval is how long a latest-configuration read is served from
	// the local cache before going back to the server. Zero disables the
	// local cache.
	RefreshInterval time.Duration
}

type httpConfigClient struct {
	client *resty.Client
	latest *ttlcache.Cache[string, models.Configuration]
}

// NewHTTPConfigClient constructs an HTTP/REST implementation of
// [ConfigClient].
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPConfigClient(cfg HTTPClientConfig) (ConfigClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid config server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	c := &httpConfigClient{client: cli}

	if cfg.RefreshInterval > 0 {
		c.latest = ttlcache.New(
			ttlcache.WithTTL[string, models.Configuration](cfg.RefreshInterval),
		)
	}

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Create implements [ConfigClient].
func (c *httpConfigClient) Create(ctx context.Context, appName, env string, data json.RawMessage) (models.Configuration, error) {
	var created models.Configuration

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateConfigurationRequest{AppName: appName, Env: env, Data: data}).
		SetResult(&created).
		Post("/api/configurations")
	if err != nil {
		return models.Configuration{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Configuration{}, err
	}

	c.invalidateLatest(appName, env)
	return created, nil
}

// GetLatest implements [ConfigClient].
func (c *httpConfigClient) GetLatest(ctx context.Context, appName, env string) (models.Configuration, error) {
	cacheKey := appName + ":" + env
	if c.latest != nil {
		if item := c.latest.Get(cacheKey); item != nil {
			return item.Value(), nil
		}
	}

	var latest models.Configuration

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"app_name": appName, "env": env}).
		SetResult(&latest).
		Get("/api/configurations/latest")
	if err != nil {
		return models.Configuration{}, fmt.Errorf("get latest request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Configuration{}, err
	}

	if c.latest != nil {
		c.latest.Set(cacheKey, latest, ttlcache.DefaultTTL)
	}
	return latest, nil
}

// GetByID implements [ConfigClient].
func (c *httpConfigClient) GetByID(ctx context.Context, id string) (models.Configuration, error) {
	var found models.Configuration

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&found).
		Get("/api/configurations/" + id)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("get by id request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Configuration{}, err
	}

	return found, nil
}

// List implements [ConfigClient].
func (c *httpConfigClient) List(ctx context.Context, appName, env string) ([]models.Configuration, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{"app_name": appName, "env": env}).
		Get("/api/configurations")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Configuration
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return items, nil
}

// Update implements [ConfigClient].
func (c *httpConfigClient) Update(ctx context.Context, id string, data json.RawMessage) (models.Configuration, error) {
	var updated models.Configuration

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(data)).
		SetResult(&updated).
		Put("/api/configurations/" + id)
	if err != nil {
		return models.Configuration{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Configuration{}, err
	}

	c.invalidateLatest(updated.AppName, updated.Env)
	return updated, nil
}

// Delete implements [ConfigClient].
func (c *httpConfigClient) Delete(ctx context.Context, id string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete("/api/configurations/" + id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	// the tombstoned key is unknown from a 204: drop the whole local cache
	// rather than risk serving the deleted version as latest
	if c.latest != nil {
		c.latest.DeleteAll()
	}
	return nil
}

func (c *httpConfigClient) invalidateLatest(appName, env string) {
	if c.latest != nil {
		c.latest.Delete(appName + ":" + env)
	}
}
