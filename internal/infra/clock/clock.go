// Package clock provides the system implementation of the wall clock.
package clock

import (
	"time"

	"bites/internal/domain/service"
)

type systemClock struct{}

// New returns a clock backed by the system time.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
