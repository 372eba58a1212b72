package entity

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a customer-submitted support message. Inquiries are append-only
// and immutable after creation.
type Inquiry struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	CustomerUID  string    `json:"customer_uid"`
	Email        string    `json:"email"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
