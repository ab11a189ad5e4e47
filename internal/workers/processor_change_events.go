// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"encoding/json"

	"github.com/MKhiriev/go-config-keeper/internal/config"
	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/internal/notifier"
	"github.com/MKhiriev/go-config-keeper/models"
)

// ChangeEventProcessor consumes configuration change events and applies
// downstream processing to each one exactly once per delivery window.
//
// Delivery from the notifier is at-least-once, so the processor drops
// duplicate deliveries by remembering recently seen event identities
// ((app, env, version, type)) within a bounded window.
type ChangeEventProcessor struct {
	events <-chan []byte
	cancel func()
	window *dedupeWindow
	done   chan struct{}

	logger *logger.Logger
}

// NewChangeEventProcessor subscribes to all configuration change subjects and
// returns a processor ready to Run. Call Shutdown to unsubscribe and stop.
func NewChangeEventProcessor(subscriber notifier.Subscriber, cfg config.Workers, logger *logger.Logger) (*ChangeEventProcessor, error) {
	events, cancel, err := subscriber.Subscribe(notifier.SubjectAll)
	if err != nil {
		return nil, err
	}

	return &ChangeEventProcessor{
		events: events,
		cancel: cancel,
		window: newDedupeWindow(cfg.DedupeWindow),
		done:   make(chan struct{}),
		logger: logger,
	}, nil
}

// Run implements [Worker]. It blocks consuming events until the subscription
// is cancelled via Shutdown.
func (p *ChangeEventProcessor) Run() {
	defer close(p.done)

	p.logger.Info().Str("func", "ChangeEventProcessor.Run").Msg("change event processor started")

	for data := range p.events {
		p.handle(data)
	}

	p.logger.Info().Str("func", "ChangeEventProcessor.Run").Msg("change event processor stopped")
}

// Shutdown cancels the subscription and waits for Run to drain and return.
func (p *ChangeEventProcessor) Shutdown() {
	p.cancel()
	<-p.done
}

func (p *ChangeEventProcessor) handle(data []byte) {
	var event models.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		p.logger.Warn().Err(err).
			Str("func", "ChangeEventProcessor.handle").
			Msg("dropping malformed change event")
		return
	}

	if !p.window.observe(event.DedupeKey()) {
		p.logger.Debug().
			Str("func", "ChangeEventProcessor.handle").
			Str("dedupe_key", event.DedupeKey()).
			Msg("dropping duplicate change event delivery")
		return
	}

	p.logger.Info().
		Str("func", "ChangeEventProcessor.handle").
		Str("event_type", event.EventType).
		Str("app_name", event.AppName).
		Str("env", event.Env).
		Int64("version", event.Version).
		Time("timestamp", event.Timestamp).
		Msg("configuration change processed")
}

// dedupeWindow remembers the last capacity event identities. Not safe for
// concurrent use; the processor observes from a single goroutine.
type dedupeWindow struct {
	capacity int
	seen     map[string]struct{}
	order    []string
	next     int
}

func newDedupeWindow(capacity int) *dedupeWindow {
	if capacity <= 0 {
		capacity = 1
	}
	return &dedupeWindow{
		capacity: capacity,
		seen:     make(map[string]struct{}, capacity),
		order:    make([]string, 0, capacity),
	}
}

// observe reports whether key is new within the window and records it.
func (w *dedupeWindow) observe(key string) bool {
	if _, ok := w.seen[key]; ok {
		return false
	}

	if len(w.order) < w.capacity {
		w.order = append(w.order, key)
	} else {
		// evict the oldest identity to keep the window bounded
		delete(w.seen, w.order[w.next])
		w.order[w.next] = key
		w.next = (w.next + 1) % w.capacity
	}
	w.seen[key] = struct{}{}

	return true
}
