package entity

import "github.com/shopspring/decimal"

// FulfillmentMode selects how an order reaches the customer.
type FulfillmentMode string

const (
	// ModePickup means the customer collects at the counter.
	ModePickup FulfillmentMode = "pickup"
	// ModeDelivery means the order is brought to a campus location.
	ModeDelivery FulfillmentMode = "delivery"
)

// Totals is the derived pricing of a cart at one instant.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
}

// PricingPolicy holds the configurable pricing knobs.
type PricingPolicy struct {
	// DiscountRate is the membership discount fraction, e.g. 0.10.
	DiscountRate decimal.Decimal
	// DeliveryFee is the flat surcharge for delivery orders.
	DeliveryFee decimal.Decimal
}

// Compute derives the totals for a cart. The membership discount applies
// whenever a profile is present; the delivery fee applies only to non-empty
// delivery carts. Pure: identical inputs yield identical totals.
func (p PricingPolicy) Compute(cart *Cart, membershipActive bool, mode FulfillmentMode) Totals {
	subtotal := cart.Subtotal()

	discount := decimal.Zero
	if membershipActive {
		discount = subtotal.Mul(p.DiscountRate)
	}

	fee := decimal.Zero
	if mode == ModeDelivery && !cart.Empty() {
		fee = p.DeliveryFee
	}

	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		DeliveryFee: fee,
		GrandTotal:  subtotal.Sub(discount).Add(fee),
	}
}
