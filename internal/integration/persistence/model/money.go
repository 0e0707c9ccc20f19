// Package model defines database models for persistence layer.
package model

import "github.com/shopspring/decimal"

// amountOrZero returns the stored amount, or zero when the column is NULL.
func amountOrZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}

// Amount wraps a known amount for storage.
func Amount(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}
