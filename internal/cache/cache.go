// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides the best-effort in-memory cache for the latest
// active configuration of each (app, env) key.
//
// The cache is an availability optimisation only: every mutation invalidates
// the affected key, and entries additionally expire after a configured TTL,
// so a stale value can never outlive the TTL even if an invalidation is
// lost. Disabling the cache entirely costs nothing but latency.
package cache

import (
	"fmt"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/models"
	"github.com/jellydator/ttlcache/v3"
)

// LatestCache caches the latest active configuration per (app, env) key.
//
// Implementations must be safe for concurrent use. Lookups and stores are
// best-effort: a miss or a dropped Put is never an error, callers fall
// through to the store.
type LatestCache interface {
	// Get returns the cached latest configuration for key, if present.
	Get(key models.ConfigurationKey) (models.Configuration, bool)

	// Put stores cfg as the latest configuration for key.
	Put(key models.ConfigurationKey, cfg models.Configuration)

	// Invalidate drops the cached entry for key, if any.
	Invalidate(key models.ConfigurationKey)

	// Stop releases background resources held by the cache.
	Stop()
}

// Key renders the canonical cache key for a configuration key.
func Key(key models.ConfigurationKey) string {
	return fmt.Sprintf("config:latest:%s:%s", key.AppName, key.Env)
}

// TTLCache is the [LatestCache] implementation backed by jellydator/ttlcache.
type TTLCache struct {
	items *ttlcache.Cache[string, models.Configuration]
}

// NewTTLCache constructs a [TTLCache] from the cache configuration and starts
// its background expiry loop. Callers own the returned cache and must call
// Stop on shutdown.
func NewTTLCache(cfg config.Cache) *TTLCache {
	items := ttlcache.New(
		ttlcache.WithTTL[string, models.Configuration](cfg.TTL),
		ttlcache.WithCapacity[string, models.Configuration](cfg.Capacity),
	)
	go items.Start()

	return &TTLCache{items: items}
}

// Get implements [LatestCache].
func (c *TTLCache) Get(key models.ConfigurationKey) (models.Configuration, bool) {
	item := c.items.Get(Key(key))
	if item == nil {
		return models.Configuration{}, false
	}

	return item.Value(), true
}

// Put implements [LatestCache].
func (c *TTLCache) Put(key models.ConfigurationKey, cfg models.Configuration) {
	c.items.Set(Key(key), cfg, ttlcache.DefaultTTL)
}

// Invalidate implements [LatestCache].
func (c *TTLCache) Invalidate(key models.ConfigurationKey) {
	c.items.Delete(Key(key))
}

// Stop implements [LatestCache]. It halts the background expiry loop.
func (c *TTLCache) Stop() {
	c.items.Stop()
}

// Noop is a [LatestCache] that caches nothing. It is wired when caching is
// disabled via configuration.
type Noop struct{}

// NewNoop constructs a [Noop] cache.
func NewNoop() *Noop {
	return &Noop{}
}

// Get implements [LatestCache]. It always misses.
func (n *Noop) Get(models.ConfigurationKey) (models.Configuration, bool) {
	return models.Configuration{}, false
}

// Put implements [LatestCache]. It discards the value.
func (n *Noop) Put(models.ConfigurationKey, models.Configuration) {}

// Invalidate implements [LatestCache]. It does nothing.
func (n *Noop) Invalidate(models.ConfigurationKey) {}

// Stop implements [LatestCache]. It does nothing.
func (n *Noop) Stop() {}

// New selects the [LatestCache] implementation for the given configuration:
// a [Noop] when caching is disabled, a [TTLCache] otherwise.
func New(cfg config.Cache) LatestCache {
	if cfg.Disabled {
		return NewNoop()
	}

	return NewTTLCache(cfg)
}
