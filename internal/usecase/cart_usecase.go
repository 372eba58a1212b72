// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"bites/internal/domain/entity"
)

// CartView is the rendered cart plus the totals derived for the requested
// fulfillment mode and the current membership state.
type CartView struct {
	Lines  []entity.CartLine `json:"lines"`
	Totals entity.Totals     `json:"totals"`
}

// CartUsecase manages the single active cart and its derived pricing.
type CartUsecase interface {
	// AddItem increments the quantity of a catalog item by one. Rejected
	// while the canteen is closed.
	AddItem(ctx context.Context, itemID int) error

	// ChangeQuantity adjusts a line's quantity by delta, clamping at zero;
	// a line reaching zero is removed. Unknown items are ignored.
	ChangeQuantity(ctx context.Context, itemID, delta int)

	// RemoveItem deletes the line unconditionally.
	RemoveItem(ctx context.Context, itemID int)

	// Clear empties the cart.
	Clear(ctx context.Context)

	// View returns the cart lines and totals for the given mode.
	View(ctx context.Context, mode entity.FulfillmentMode) *CartView

	// Snapshot returns a copy of the current cart for order placement.
	Snapshot(ctx context.Context) *entity.Cart
}
