// Package keyval contains the flat key-value store backing persistence,
// with interchangeable file, in-memory and redis providers.
package keyval

import (
	"context"
	"errors"
)

// Storage keys. Each collection is serialized whole under its own key.
const (
	ProfileKey   = "cb_user_auth"
	OrdersKey    = "cb_orders_v4"
	InquiriesKey = "cb_inquiries_v4"
)

// ErrKeyNotFound is returned by Get for an absent key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a minimal flat key-value abstraction. Values are opaque byte
// blobs; writes replace the previous value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
