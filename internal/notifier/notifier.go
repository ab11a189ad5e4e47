// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier publishes and consumes configuration change events.
//
// Every successful mutation produces exactly one event on the subject for
// its (app, env) key. Delivery is at-least-once: consumers must tolerate
// duplicates and deduplicate on the event's identity when side effects
// matter.
package notifier

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-config-keeper/models"
)

// SubjectPrefix is the root of the change-event subject hierarchy.
const SubjectPrefix = "configurations.changes"

// SubjectAll matches change events for every configuration key.
const SubjectAll = SubjectPrefix + ".>"

// Subject renders the NATS subject carrying change events for key. Events for
// the same key share a subject, so their relative publish order is preserved
// for any single subscriber.
func Subject(key models.ConfigurationKey) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, key.AppName, key.Env)
}

// Publisher emits configuration change events.
type Publisher interface {
	// Publish sends event on the subject derived from its key.
	Publish(ctx context.Context, event models.ChangeEvent) error

	// Close releases the underlying connection.
	Close() error
}

// Subscriber receives raw change-event payloads.
type Subscriber interface {
	// Subscribe delivers raw event payloads for the given subject pattern on
	// the returned channel. Call the returned cancel function to unsubscribe
	// and close the channel.
	Subscribe(subject string) (<-chan []byte, func(), error)

	// Close releases the underlying connection.
	Close() error
}
