package test

import (
	"context"
	"sync"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// SenderStub records emails and optionally fails.
type SenderStub struct {
	mu     sync.Mutex
	sent   []model.Email
	SendFn func(context.Context, model.Email) error
}

// Send records the email unless SendFn returns an error.
func (s *SenderStub) Send(ctx context.Context, email model.Email) error {
	if s.SendFn != nil {
		if err := s.SendFn(ctx, email); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return nil
}

// Sent returns a copy of delivered emails.
func (s *SenderStub) Sent() []model.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Email(nil), s.sent...)
}

// NotificationCounter counts notification outcomes by kind.
type NotificationCounter struct {
	mu     sync.Mutex
	counts map[string]int
}

// ObserveNotification increments the kind/outcome counter.
func (c *NotificationCounter) ObserveNotification(kind model.OrderEventKind, outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[string(kind)+"/"+outcome]++
}

// Count returns the counter for kind and outcome.
func (c *NotificationCounter) Count(kind model.OrderEventKind, outcome string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[string(kind)+"/"+outcome]
}
