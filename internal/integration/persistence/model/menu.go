package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// MenuModel represents the menus table in the database.
type MenuModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Products []MenuProductModel `gorm:"foreignKey:MenuID;references:ID"`
}

// TableName returns the table name for the MenuModel.
func (MenuModel) TableName() string {
	return "menus"
}

// ToEntity converts a MenuModel to a domain Menu entity, including loaded products.
func (m *MenuModel) ToEntity() *entity.Menu {
	products := make([]entity.MenuProduct, len(m.Products))
	for i := range m.Products {
		products[i] = *m.Products[i].ToEntity()
	}
	return &entity.Menu{
		ID:       m.ID,
		Name:     m.Name,
		Products: products,
	}
}

// MenuProductModel represents the menu_products table in the database.
type MenuProductModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	MenuID    uuid.UUID           `gorm:"type:uuid;not null;index"`
	Name      string              `gorm:"type:varchar(255);not null"`
	Price     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	CreatedAt time.Time           `gorm:"not null"`
	UpdatedAt time.Time           `gorm:"not null"`
}

// TableName returns the table name for the MenuProductModel.
func (MenuProductModel) TableName() string {
	return "menu_products"
}

// ToEntity converts a MenuProductModel to a domain MenuProduct entity.
func (m *MenuProductModel) ToEntity() *entity.MenuProduct {
	return &entity.MenuProduct{
		ID:     m.ID,
		MenuID: m.MenuID,
		Name:   m.Name,
		Price:  amountOrZero(m.Price),
	}
}
