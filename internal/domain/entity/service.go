package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service represents a single served line of an order.
type Service struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	Date         time.Time
	Status       OrderStatus
	Subtotal     decimal.Decimal
	MenuID       *uuid.UUID
	Menu         *Menu
	ServedUserID *uuid.UUID // Optional, unassigned services have no server
	ServedUser   *User
}

// IsActive reports whether the service is not cancelled.
func (s *Service) IsActive() bool {
	return s.Status.IsActive()
}
