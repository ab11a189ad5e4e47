package models

import (
	"fmt"
	"time"
)

// Change event types carried in [ChangeEvent.EventType].
const (
	EventConfigurationCreated = "CONFIG_CREATED"
	EventConfigurationUpdated = "CONFIG_UPDATED"
	EventConfigurationDeleted = "CONFIG_DELETED"
)

// ChangeEvent describes a single configuration mutation. Events for the same
// (AppName, Env) pair are published to the same partition and are therefore
// observed by any single consumer in mutation order.
//
// Delivery is at-least-once: consumers must deduplicate using [ChangeEvent.DedupeKey].
type ChangeEvent struct {
	// EventType is one of the Event* constants.
	EventType string `json:"event_type"`

	AppName string `json:"app_name"`
	Env     string `json:"env"`

	// Version is the version number the mutation produced (for deletes, the
	// version of the tombstoned row).
	Version int64 `json:"version"`

	Timestamp time.Time `json:"timestamp"`
}

// Key returns the configuration key the event belongs to.
func (e ChangeEvent) Key() ConfigurationKey {
	return ConfigurationKey{AppName: e.AppName, Env: e.Env}
}

// DedupeKey identifies a logical mutation. Two deliveries of the same event
// produce the same key, so consumers can drop duplicates with a seen-set.
func (e ChangeEvent) DedupeKey() string {
	return fmt.Sprintf("%s:%s:%d:%s", e.AppName, e.Env, e.Version, e.EventType)
}
