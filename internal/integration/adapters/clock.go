package adapters

import (
	"time"

	"github.com/pos-dashboard/backend/internal/application/adapter"
)

type systemClock struct{}

// NewSystemClock returns a clock backed by the system time.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
