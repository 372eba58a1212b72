// Package service defines domain-level collaborator interfaces implemented
// by the infra layer.
package service

import "time"

// Clock supplies the current wall-clock time. Injected so the open-hours
// gate and order creation are testable against a fixed time.
type Clock interface {
	Now() time.Time
}
