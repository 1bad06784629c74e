package model

import "time"

// Email is a single transactional message.
type Email struct {
	To      string
	From    string
	Subject string
	HTML    string
}

// OrderEventKind names lifecycle edges that have side effects.
type OrderEventKind string

const (
	EventAdoptionApplied       OrderEventKind = "adoption_applied"
	EventCommissionApplied     OrderEventKind = "commission_applied"
	EventCancellationRequested OrderEventKind = "cancellation_requested"
	EventOrderConfirmed        OrderEventKind = "order_confirmed"
	EventAwaitingConfirmation  OrderEventKind = "awaiting_confirmation"
)

// OrderEvent is emitted after an order mutation has been stored.
type OrderEvent struct {
	Kind       OrderEventKind
	Order      Order
	Reason     string
	OccurredAt time.Time
}
