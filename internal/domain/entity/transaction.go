package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a ledger movement on a customer account.
type Transaction struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Debit      decimal.Decimal
	Credit     decimal.Decimal
}
