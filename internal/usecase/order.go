package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
	"github.com/polkiloo/suitopia/internal/domain/repository"
)

// Order number prefixes.
const (
	AdoptionPrefix   = "S"
	CommissionPrefix = "C"
)

// EventPublisher receives order events once the order write succeeded.
type EventPublisher interface {
	Publish(ctx context.Context, event model.OrderEvent)
}

// StatusObserver counts orders entering a status.
type StatusObserver interface {
	ObserveStatus(status model.OrderStatus)
}

// OrderNumberGenerator builds customer-facing order numbers: prefix,
// UTC date and a random suffix in [100, 999]. Numbers are not unique.
type OrderNumberGenerator struct {
	now  func() time.Time
	intn func(n int) int
}

// NewOrderNumberGenerator constructs a generator on the wall clock.
func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{now: time.Now, intn: rand.IntN}
}

// Next returns a number with the given prefix.
func (g *OrderNumberGenerator) Next(prefix string) string {
	return prefix + g.now().UTC().Format("20060102") + strconv.Itoa(100+g.intn(900))
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders     repository.OrderRepository
	characters repository.CharacterRepository
	events     EventPublisher
	observer   StatusObserver
	numbers    *OrderNumberGenerator
	now        func() time.Time
	logger     *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(
	orders repository.OrderRepository,
	characters repository.CharacterRepository,
	events EventPublisher,
	observer StatusObserver,
	numbers *OrderNumberGenerator,
	logger *slog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orders:     orders,
		characters: characters,
		events:     events,
		observer:   observer,
		numbers:    numbers,
		now:        time.Now,
		logger:     logger,
	}
}

// CreateAdoption files an adoption application for a catalog character and
// bumps the character's applicant counter.
func (u *OrderUseCase) CreateAdoption(ctx context.Context, userID string, character model.Character, application *model.ApplicationData) (*model.Order, error) {
	if err := validateApplication(userID, character.Name, application); err != nil {
		return nil, err
	}

	order := u.newOrder(userID, model.OrderTypeAdoption, application)
	order.ProductName = character.Name
	order.OrderNumber = u.numbers.Next(AdoptionPrefix)
	order.ImageURL = character.ImageURL
	order.Total = character.Price

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// The order is already stored; a failed counter write is only logged.
	found, err := u.characters.IncrementApplicants(ctx, character.ID)
	switch {
	case err != nil:
		u.logger.Error("failed to increment applicants",
			slog.String("character_id", character.ID), slog.String("order_id", order.ID), slog.Any("error", err))
	case !found:
		u.logger.Warn("adoption for unknown character", slog.String("character_id", character.ID))
	}

	u.committed(ctx, model.EventAdoptionApplied, order, "")
	return &order, nil
}

// CreateCommission files a commission application for a style.
func (u *OrderUseCase) CreateCommission(ctx context.Context, userID string, style model.CommissionStyle, application *model.ApplicationData) (*model.Order, error) {
	if err := validateApplication(userID, style.Name, application); err != nil {
		return nil, err
	}

	order := u.newOrder(userID, model.OrderTypeCommission, application)
	order.ProductName = style.Name
	order.OrderNumber = u.numbers.Next(CommissionPrefix)
	order.ImageURL = style.ImageURL
	order.Total = style.Price + " (estimate)"
	order.ReferenceImageURL = application.ReferenceImageURL

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	u.committed(ctx, model.EventCommissionApplied, order, "")
	return &order, nil
}

func (u *OrderUseCase) newOrder(userID string, orderType model.OrderType, application *model.ApplicationData) model.Order {
	now := u.now().UTC()
	app := *application
	return model.Order{
		ID:              fmt.Sprintf("order_%d", now.UnixMilli()),
		UserID:          userID,
		OrderType:       orderType,
		Status:          model.OrderStatusApplying,
		OrderDate:       now,
		ShippingAddress: application.ShippingAddress(),
		ApplicationData: &app,
	}
}

// Update merges an admin edit into the stored order. Moving a commission
// into pending_confirmation asks the applicant to confirm.
func (u *OrderUseCase) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if patch.Status != nil {
		if err := validateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	var prior model.OrderStatus
	order, err := u.orders.Update(ctx, id, func(o *model.Order) error {
		prior = o.Status
		patch.Apply(o)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if order.Status != prior {
		u.observe(order.Status)
		if order.Status == model.OrderStatusPendingConfirmation && order.OrderType == model.OrderTypeCommission {
			u.publish(ctx, model.EventAwaitingConfirmation, *order, "")
		}
	}
	return order, nil
}

// Cancel records a customer's cancellation request.
func (u *OrderUseCase) Cancel(ctx context.Context, id, reason string) (*model.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: cancellation reason is required", domainErrors.ErrValidation)
	}

	order, err := u.orders.Update(ctx, id, func(o *model.Order) error {
		if !o.Status.CanTransitionTo(model.OrderStatusCancelling) {
			return fmt.Errorf("%w: order in status %s cannot be cancelled", domainErrors.ErrInvalidTransition, o.Status)
		}
		o.Status = model.OrderStatusCancelling
		o.CancellationReason = reason
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.committed(ctx, model.EventCancellationRequested, *order, reason)
	return order, nil
}

// Reinstate puts an order back into applying and clears the cancellation
// reason. Any prior status is accepted.
func (u *OrderUseCase) Reinstate(ctx context.Context, id string) (*model.Order, error) {
	var prior model.OrderStatus
	order, err := u.orders.Update(ctx, id, func(o *model.Order) error {
		prior = o.Status
		o.Status = model.OrderStatusApplying
		o.CancellationReason = ""
		return nil
	})
	if err != nil {
		return nil, err
	}

	if prior != model.OrderStatusCancelling {
		u.logger.Warn("order reinstated from non-cancelling status",
			slog.String("order_id", id), slog.String("prior_status", string(prior)))
	}
	u.observe(order.Status)
	return order, nil
}

// Confirm records the applicant's confirmation of a pending commission.
func (u *OrderUseCase) Confirm(ctx context.Context, id string) (*model.Order, error) {
	order, err := u.orders.Update(ctx, id, func(o *model.Order) error {
		if o.Status != model.OrderStatusPendingConfirmation {
			return fmt.Errorf("%w: order in status %s cannot be confirmed", domainErrors.ErrInvalidTransition, o.Status)
		}
		o.Status = model.OrderStatusConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.committed(ctx, model.EventOrderConfirmed, *order, "")
	return order, nil
}

// Delete removes the order.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

// Get returns a single order.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns orders newest first, optionally only those of userID.
func (u *OrderUseCase) List(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	if userID != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if o.UserID == userID {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

func (u *OrderUseCase) committed(ctx context.Context, kind model.OrderEventKind, order model.Order, reason string) {
	u.observe(order.Status)
	u.publish(ctx, kind, order, reason)
}

func (u *OrderUseCase) observe(status model.OrderStatus) {
	if u.observer != nil {
		u.observer.ObserveStatus(status)
	}
}

func (u *OrderUseCase) publish(ctx context.Context, kind model.OrderEventKind, order model.Order, reason string) {
	if u.events == nil {
		return
	}
	u.events.Publish(ctx, model.OrderEvent{
		Kind:       kind,
		Order:      order,
		Reason:     reason,
		OccurredAt: u.now().UTC(),
	})
}
