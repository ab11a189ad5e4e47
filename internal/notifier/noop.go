// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notifier

import (
	"context"

	"github.com/MKhiriev/go-config-keeper/models"
)

// NoopPublisher is a [Publisher] that does nothing (used when NATS is not
// configured).
type NoopPublisher struct{}

// Publish implements [Publisher].
func (n *NoopPublisher) Publish(context.Context, models.ChangeEvent) error {
	return nil
}

// Close implements [Publisher].
func (n *NoopPublisher) Close() error {
	return nil
}
