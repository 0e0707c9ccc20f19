package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Date       time.Time           `gorm:"type:date;not null;index"`
	Status     string              `gorm:"type:varchar(20);not null;index"`
	Total      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Advance    decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Balance    decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	CustomerID *uuid.UUID          `gorm:"type:uuid;index"`
	CreatedAt  time.Time           `gorm:"not null"`
	UpdatedAt  time.Time           `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Customer *CustomerModel      `gorm:"foreignKey:CustomerID;references:ID"`
	Services []ServiceModel      `gorm:"foreignKey:OrderID;references:ID"`
	Payments []OrderPaymentModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity with whatever relations were loaded.
func (m *OrderModel) ToEntity() *entity.Order {
	order := &entity.Order{
		ID:         m.ID,
		Date:       m.Date,
		Status:     entity.OrderStatus(m.Status),
		Total:      amountOrZero(m.Total),
		Advance:    amountOrZero(m.Advance),
		Balance:    amountOrZero(m.Balance),
		CustomerID: m.CustomerID,
		Services:   make([]entity.Service, len(m.Services)),
		Payments:   make([]entity.Payment, len(m.Payments)),
	}
	if m.Customer != nil {
		order.Customer = m.Customer.ToEntity()
	}
	for i := range m.Services {
		order.Services[i] = *m.Services[i].ToEntity()
	}
	for i := range m.Payments {
		order.Payments[i] = *m.Payments[i].ToEntity()
	}
	return order
}

// OrderPaymentModel represents the order_payments table in the database.
type OrderPaymentModel struct {
	ID        uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	Date      time.Time           `gorm:"type:date;not null;index"`
	Amount    decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Method    string              `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time           `gorm:"not null"`
	UpdatedAt time.Time           `gorm:"not null"`
}

// TableName returns the table name for the OrderPaymentModel.
func (OrderPaymentModel) TableName() string {
	return "order_payments"
}

// ToEntity converts an OrderPaymentModel to a domain Payment entity.
func (m *OrderPaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:      m.ID,
		OrderID: m.OrderID,
		Date:    m.Date,
		Amount:  amountOrZero(m.Amount),
		Method:  entity.PaymentMethod(m.Method),
	}
}

// ServiceModel represents the services table in the database.
type ServiceModel struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	Date         time.Time           `gorm:"type:date;not null;index"`
	Status       string              `gorm:"type:varchar(20);not null"`
	Subtotal     decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	MenuID       *uuid.UUID          `gorm:"type:uuid"`
	ServedUserID *uuid.UUID          `gorm:"type:uuid;index"`
	CreatedAt    time.Time           `gorm:"not null"`
	UpdatedAt    time.Time           `gorm:"not null"`

	Menu       *MenuModel `gorm:"foreignKey:MenuID;references:ID"`
	ServedUser *UserModel `gorm:"foreignKey:ServedUserID;references:ID"`
}

// TableName returns the table name for the ServiceModel.
func (ServiceModel) TableName() string {
	return "services"
}

// ToEntity converts a ServiceModel to a domain Service entity.
func (m *ServiceModel) ToEntity() *entity.Service {
	service := &entity.Service{
		ID:           m.ID,
		OrderID:      m.OrderID,
		Date:         m.Date,
		Status:       entity.OrderStatus(m.Status),
		Subtotal:     amountOrZero(m.Subtotal),
		MenuID:       m.MenuID,
		ServedUserID: m.ServedUserID,
	}
	if m.Menu != nil {
		service.Menu = m.Menu.ToEntity()
	}
	if m.ServedUser != nil {
		service.ServedUser = m.ServedUser.ToEntity()
	}
	return service
}

// All returns every model of the entity store, in dependency order, for migrations.
func All() []any {
	return []any{
		&CustomerModel{},
		&TransactionModel{},
		&EmployeeModel{},
		&UserModel{},
		&MenuModel{},
		&MenuProductModel{},
		&OrderModel{},
		&OrderPaymentModel{},
		&ServiceModel{},
	}
}
