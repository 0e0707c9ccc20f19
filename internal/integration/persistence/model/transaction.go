package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// TransactionModel represents the customer ledger table in the database.
type TransactionModel struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Debit      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Credit     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	CreatedAt  time.Time           `gorm:"not null"`
	UpdatedAt  time.Time           `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Missing amounts count as zero.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Debit:      amountOrZero(m.Debit),
		Credit:     amountOrZero(m.Credit),
	}
}
