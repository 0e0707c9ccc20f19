package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a customer of the business.
type Customer struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

// CustomerBalance is a customer together with its ledger totals.
// Balance is always derived as Debit - Credit and never persisted.
type CustomerBalance struct {
	Customer
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal
}

// NewCustomerBalance derives the balance of a customer from its ledger totals.
func NewCustomerBalance(customer Customer, debit, credit decimal.Decimal) CustomerBalance {
	return CustomerBalance{
		Customer: customer,
		Debit:    debit,
		Credit:   credit,
		Balance:  debit.Sub(credit),
	}
}
