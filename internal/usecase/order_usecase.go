package usecase

import (
	"context"

	"bites/internal/domain/entity"
)

// PlaceOrderInput carries the checkout choices.
type PlaceOrderInput struct {
	Mode     entity.FulfillmentMode `json:"mode"`
	Location string                 `json:"location"`
}

// OrderUsecase converts a finalized cart into an immutable order and walks
// it through the status progression.
type OrderUsecase interface {
	// PlaceOrder snapshots the cart into a new order at the head of the
	// history and clears the cart. Rejected when the cart is empty, the
	// canteen is closed, or a delivery order has a blank location; a
	// rejection leaves the cart and history untouched.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// ListOrders returns the order history, most recent first.
	ListOrders(ctx context.Context) []*entity.Order

	// GetOrder returns one order by its identifier.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// UpdateStatus applies a manual, forward-only status transition.
	// Values outside the status enum are rejected.
	UpdateStatus(ctx context.Context, id, rawStatus string) (*entity.Order, error)
}
