// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bites/internal/domain/entity"
)

// OrderRepository persists the order history as one whole collection,
// most-recent-first. Absent or malformed stored content loads as the empty
// default rather than an error.
type OrderRepository interface {
	// LoadOrders retrieves the full order history.
	LoadOrders(ctx context.Context) ([]*entity.Order, error)

	// SaveOrders replaces the stored order history with the given collection.
	SaveOrders(ctx context.Context, orders []*entity.Order) error
}
