// Package delivery defines the contract for the application's serving
// surfaces, started together by the fx runtime.
package delivery

import "context"

// Delivery is a long-running serving component, such as the HTTP server or
// the canteen status poller.
type Delivery interface {
	Serve(ctx context.Context) error
}
