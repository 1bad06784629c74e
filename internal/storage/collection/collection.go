// Package collection maps whole-document storage onto record collections.
package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/storage"
)

// Collection is an array document whose elements are addressed by id.
// Every call reads the whole document; every mutation rewrites it.
type Collection[T any] struct {
	store  storage.DocumentStore
	name   string
	entity string
	key    func(*T) *string

	// mu serialises read-modify-write cycles inside this process only.
	mu sync.Mutex
}

// New creates a collection over the named document. key returns a pointer
// to the record id field.
func New[T any](store storage.DocumentStore, name, entity string, key func(*T) *string) *Collection[T] {
	return &Collection[T]{store: store, name: name, entity: entity, key: key}
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	var items []T
	if err := c.store.Read(ctx, c.name, &items); err != nil {
		if errors.Is(err, storage.ErrDocumentMissing) {
			return []T{}, nil
		}
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) indexOf(items []T, id string) int {
	for i := range items {
		if *c.key(&items[i]) == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T]) notFound(id string) error {
	return fmt.Errorf("%w: %s %s", domainErrors.ErrNotFound, c.entity, id)
}

// List returns every record in stored order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

// GetByID returns the first record with the id.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return nil, c.notFound(id)
	}
	item := items[i]
	return &item, nil
}

// Create appends the record.
func (c *Collection[T]) Create(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	return c.store.Write(ctx, c.name, append(items, item))
}

// Update applies mutate to the stored record and writes the document back.
// The record id is restored after mutate returns.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return nil, c.notFound(id)
	}

	item := items[i]
	if err := mutate(&item); err != nil {
		return nil, err
	}
	*c.key(&item) = id
	items[i] = item

	if err := c.store.Write(ctx, c.name, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// Replace overwrites the stored record, keeping its id.
func (c *Collection[T]) Replace(ctx context.Context, id string, item T) (*T, error) {
	return c.Update(ctx, id, func(current *T) error {
		*current = item
		return nil
	})
}

// Delete removes the record.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	i := c.indexOf(items, id)
	if i < 0 {
		return c.notFound(id)
	}
	items = append(items[:i], items[i+1:]...)
	return c.store.Write(ctx, c.name, items)
}
