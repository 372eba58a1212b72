package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the kitchen-side state of an order. Progression is monotonic:
// received, then preparing, then ready. Ready is terminal.
type Status string

const (
	StatusReceived  Status = "received"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
)

var statusRank = map[Status]int{
	StatusReceived:  1,
	StatusPreparing: 2,
	StatusReady:     3,
}

// ParseStatus validates a raw status string against the three-state enum.
func ParseStatus(raw string) (Status, bool) {
	status := Status(raw)
	_, ok := statusRank[status]

	return status, ok
}

// Rank returns the position of the status in the progression, higher being
// later. Unknown statuses rank zero.
func (s Status) Rank() int {
	return statusRank[s]
}

const (
	// GuestName is the customer name recorded when no profile is set.
	GuestName = "Guest"
	// CounterLocation is the fixed pickup point for non-delivery orders.
	CounterLocation = "Counter 01"
)

// Order is an immutable record created at checkout, snapshotting the cart
// contents and price at that instant. Only the Status field changes after
// creation, and only through the order lifecycle manager or the manager
// dashboard. The display token is cosmetic and not guaranteed unique; ID is
// the primary key.
type Order struct {
	ID               string          `json:"id"`       // Creation-time-derived unique identifier.
	Token            string          `json:"token"`    // Short human-facing code, e.g. "CB-412".
	CustomerName     string          `json:"customer_name"`
	CustomerUID      string          `json:"customer_uid"`
	Items            string          `json:"items"`    // Itemized description, frozen at checkout.
	Total            decimal.Decimal `json:"total"`    // Grand total including discount and fee, frozen at checkout.
	Mode             FulfillmentMode `json:"mode"`
	Location         string          `json:"location"` // Delivery location, or the counter label for pickup.
	Status           Status          `json:"status"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	CreatedAt        time.Time       `json:"created_at"`
}
