package repository

import (
	"context"

	"github.com/polkiloo/suitopia/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	Create(ctx context.Context, order model.Order) error
	// Update loads the order, applies mutate and stores the result.
	// Returning an error from mutate aborts without writing.
	Update(ctx context.Context, id string, mutate func(*model.Order) error) (*model.Order, error)
	Delete(ctx context.Context, id string) error
}
