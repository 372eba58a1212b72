// Package model contains the storage representations of the domain
// entities and their mappers.
package model

import (
	"time"

	"bites/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// OrderModel is the stored form of an order. The collection is serialized
// whole, most-recent-first, under its storage key.
type OrderModel struct {
	ID               string          `json:"id"`
	Token            string          `json:"token"`
	CustomerName     string          `json:"customer_name"`
	CustomerUID      string          `json:"customer_uid,omitempty"`
	Items            string          `json:"items"`
	Total            decimal.Decimal `json:"total"`
	Mode             string          `json:"mode"`
	Location         string          `json:"location"`
	Status           string          `json:"status"`
	EstimatedMinutes int             `json:"estimated_minutes"`
	CreatedAt        time.Time       `json:"created_at"`
}

// FromOrderDomain converts an entity to its storage form.
func FromOrderDomain(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:               order.ID,
		Token:            order.Token,
		CustomerName:     order.CustomerName,
		CustomerUID:      order.CustomerUID,
		Items:            order.Items,
		Total:            order.Total,
		Mode:             string(order.Mode),
		Location:         order.Location,
		Status:           string(order.Status),
		EstimatedMinutes: order.EstimatedMinutes,
		CreatedAt:        order.CreatedAt,
	}
}

// ToOrderDomain converts a stored order back to its entity form.
func ToOrderDomain(m *OrderModel) *entity.Order {
	return &entity.Order{
		ID:               m.ID,
		Token:            m.Token,
		CustomerName:     m.CustomerName,
		CustomerUID:      m.CustomerUID,
		Items:            m.Items,
		Total:            m.Total,
		Mode:             entity.FulfillmentMode(m.Mode),
		Location:         m.Location,
		Status:           entity.Status(m.Status),
		EstimatedMinutes: m.EstimatedMinutes,
		CreatedAt:        m.CreatedAt,
	}
}
