package test

import (
	"context"
	"sync"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// EventRecorder captures published order events.
type EventRecorder struct {
	mu     sync.Mutex
	events []model.OrderEvent
}

// Publish records the event.
func (r *EventRecorder) Publish(_ context.Context, event model.OrderEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Events returns a copy of recorded events.
func (r *EventRecorder) Events() []model.OrderEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.OrderEvent(nil), r.events...)
}

// Kinds returns recorded event kinds in order.
func (r *EventRecorder) Kinds() []model.OrderEventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]model.OrderEventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// StatusCounter counts observed statuses.
type StatusCounter struct {
	mu     sync.Mutex
	counts map[model.OrderStatus]int
}

// ObserveStatus increments the counter for status.
func (c *StatusCounter) ObserveStatus(status model.OrderStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[model.OrderStatus]int)
	}
	c.counts[status]++
}

// Count returns how often status was observed.
func (c *StatusCounter) Count(status model.OrderStatus) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[status]
}
