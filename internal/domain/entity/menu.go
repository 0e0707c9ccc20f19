package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Menu represents a catalog of products offered by the business.
type Menu struct {
	ID       uuid.UUID
	Name     string
	Products []MenuProduct
}

// MenuProduct represents a single product entry of a menu.
type MenuProduct struct {
	ID     uuid.UUID
	MenuID uuid.UUID
	Name   string
	Price  decimal.Decimal
}
