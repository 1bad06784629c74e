package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/suitopia/internal/adapter/mailer"
	"github.com/polkiloo/suitopia/internal/domain/model"
)

// Delivery outcomes reported to the Observer.
const (
	OutcomeSent    = "sent"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
	OutcomeDropped = "dropped"
)

// ContentSource provides the admin address and the confirmation template.
type ContentSource interface {
	SiteContent(ctx context.Context) (*model.SiteContent, error)
	Contracts(ctx context.Context) (*model.Contracts, error)
}

// Observer counts notification outcomes.
type Observer interface {
	ObserveNotification(kind model.OrderEventKind, outcome string)
}

// Dispatcher turns order events into emails on a pool of workers.
// Delivery failures are logged and never reach the publisher.
type Dispatcher struct {
	sender   mailer.Sender
	content  ContentSource
	renderer *Renderer
	from     string
	workers  int
	observer Observer
	logger   *slog.Logger

	jobs    chan model.OrderEvent
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	started bool
	closed  bool
}

// NewDispatcher constructs the notification worker pool.
func NewDispatcher(
	sender mailer.Sender,
	content ContentSource,
	renderer *Renderer,
	from string,
	workers, queueSize int,
	observer Observer,
	logger *slog.Logger,
) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sender:   sender,
		content:  content,
		renderer: renderer,
		from:     from,
		workers:  workers,
		observer: observer,
		logger:   logger,
		jobs:     make(chan model.OrderEvent, queueSize),
	}
}

// Publish queues the event without blocking. Events are dropped when the
// queue is full or the dispatcher is stopped.
func (d *Dispatcher) Publish(_ context.Context, event model.OrderEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.drop(event, "dispatcher stopped")
		return
	}
	select {
	case d.jobs <- event:
	default:
		d.drop(event, "notification queue full")
	}
}

// Start launches the workers.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	runCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop closes the queue and waits for queued events to be delivered. When
// ctx expires first, in-flight sends are cancelled.
func (d *Dispatcher) Stop(ctx context.Context) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	cancel := d.cancel
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if cancel != nil {
			cancel()
		}
		<-done
	}
	if cancel != nil {
		cancel()
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for event := range d.jobs {
		d.handle(ctx, event)
	}
}

func (d *Dispatcher) handle(ctx context.Context, event model.OrderEvent) {
	logger := d.logger.With(slog.String("event", string(event.Kind)), slog.String("order_id", event.Order.ID))

	email, ok, err := d.compose(ctx, event)
	if err != nil {
		logger.Error("compose notification failed", slog.String("error", err.Error()))
		d.observe(event.Kind, OutcomeFailed)
		return
	}
	if !ok {
		d.observe(event.Kind, OutcomeSkipped)
		return
	}

	if err := d.sender.Send(ctx, email); err != nil {
		logger.Warn("send notification failed", slog.String("to", email.To), slog.String("error", err.Error()))
		d.observe(event.Kind, OutcomeFailed)
		return
	}
	logger.Info("notification sent", slog.String("to", email.To))
	d.observe(event.Kind, OutcomeSent)
}

func (d *Dispatcher) compose(ctx context.Context, event model.OrderEvent) (model.Email, bool, error) {
	if event.Kind == model.EventAwaitingConfirmation {
		return d.composeApplicant(ctx, event)
	}

	site, err := d.content.SiteContent(ctx)
	if err != nil {
		return model.Email{}, false, err
	}
	if site.AdminEmail == "" {
		d.logger.Info("admin email not configured, skipping notification", slog.String("event", string(event.Kind)))
		return model.Email{}, false, nil
	}

	subject, body, err := d.renderer.Admin(event)
	if err != nil {
		return model.Email{}, false, err
	}
	return model.Email{To: site.AdminEmail, From: d.from, Subject: subject, HTML: body}, true, nil
}

func (d *Dispatcher) composeApplicant(ctx context.Context, event model.OrderEvent) (model.Email, bool, error) {
	var to string
	if event.Order.ApplicationData != nil {
		to = event.Order.ApplicationData.Email
	}
	if to == "" {
		d.logger.Info("applicant email missing, skipping confirmation request", slog.String("order_id", event.Order.ID))
		return model.Email{}, false, nil
	}

	contracts, err := d.content.Contracts(ctx)
	if err != nil {
		return model.Email{}, false, err
	}
	if contracts.CommissionConfirmationEmail == "" {
		d.logger.Info("confirmation template not configured, skipping", slog.String("order_id", event.Order.ID))
		return model.Email{}, false, nil
	}

	subject, body := d.renderer.AwaitingConfirmation(contracts.CommissionConfirmationEmail, event.Order)
	return model.Email{To: to, From: d.from, Subject: subject, HTML: body}, true, nil
}

func (d *Dispatcher) drop(event model.OrderEvent, reason string) {
	d.logger.Warn("notification dropped", slog.String("event", string(event.Kind)),
		slog.String("order_id", event.Order.ID), slog.String("reason", reason))
	d.observe(event.Kind, OutcomeDropped)
}

func (d *Dispatcher) observe(kind model.OrderEventKind, outcome string) {
	if d.observer != nil {
		d.observer.ObserveNotification(kind, outcome)
	}
}
