// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle status of an order or service.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in-progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsActive reports whether records with this status count towards aggregates.
func (s OrderStatus) IsActive() bool {
	return s != OrderStatusCancelled
}

// PaymentMethod represents how an order payment was settled.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Order represents a customer order at the point of service.
type Order struct {
	ID         uuid.UUID
	Date       time.Time
	Status     OrderStatus
	Total      decimal.Decimal
	Advance    decimal.Decimal
	Balance    decimal.Decimal
	CustomerID *uuid.UUID
	Customer   *Customer
	Services   []Service
	Payments   []Payment
}

// IsActive reports whether the order is not cancelled.
func (o *Order) IsActive() bool {
	return o.Status.IsActive()
}

// Payment represents a single payment recorded against an order.
type Payment struct {
	ID      uuid.UUID
	OrderID uuid.UUID
	Date    time.Time
	Amount  decimal.Decimal
	Method  PaymentMethod
}
