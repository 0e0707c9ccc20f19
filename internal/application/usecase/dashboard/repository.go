// Package dashboard contains the dashboard snapshot use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// DashboardRepository defines the read-only entity store operations used by the dashboard.
// Grouped results are returned in first-seen order; ranking is applied by the use cases.
type DashboardRepository interface {
	// CountEmployees returns the number of employees.
	CountEmployees(ctx context.Context) (int64, error)

	// CountUsers returns the number of users.
	CountUsers(ctx context.Context) (int64, error)

	// CountMenus returns the number of menus.
	CountMenus(ctx context.Context) (int64, error)

	// ListMenus returns every menu with its product entries.
	ListMenus(ctx context.Context) ([]entity.Menu, error)

	// ListActiveOrders returns non-cancelled orders matching the filter,
	// with services, their menu and their served user loaded.
	ListActiveOrders(ctx context.Context, filter OrderFilter) ([]entity.Order, error)

	// CountActiveOrders returns the number of non-cancelled orders dated within the window.
	CountActiveOrders(ctx context.Context, window DateWindow) (int64, error)

	// ListCustomerBalances returns every customer with debit, credit and balance
	// derived from its transactions.
	ListCustomerBalances(ctx context.Context) ([]entity.CustomerBalance, error)

	// GetOrderCountsByDate returns non-cancelled order counts grouped by order date.
	GetOrderCountsByDate(ctx context.Context, window DateWindow) ([]RawDailyOrders, error)

	// GetOrderStatusBreakdown returns non-cancelled orders grouped by status.
	GetOrderStatusBreakdown(ctx context.Context) ([]RawStatusBreakdown, error)

	// ListCashPayments returns cash payments dated within the window.
	ListCashPayments(ctx context.Context, window DateWindow) ([]entity.Payment, error)

	// GetServedUserRevenue returns non-cancelled services within the window
	// that have a server, grouped by server.
	GetServedUserRevenue(ctx context.Context, window DateWindow) ([]RawEmployeeRevenue, error)

	// GetCustomerOrderCounts returns non-cancelled orders grouped by customer.
	GetCustomerOrderCounts(ctx context.Context) ([]RawCustomerOrders, error)
}

// DateWindow is a half-open time range [From, To).
type DateWindow struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w DateWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// IsZero reports whether the window is unset.
func (w DateWindow) IsZero() bool {
	return w.From.IsZero() && w.To.IsZero()
}

// OrderFilter narrows ListActiveOrders. A zero Window means all dates.
type OrderFilter struct {
	Window DateWindow
}

// RawDailyOrders represents order counts for a single calendar date.
type RawDailyOrders struct {
	Date   time.Time
	Amount decimal.Decimal
	Count  int
}

// RawStatusBreakdown represents orders aggregated by status.
type RawStatusBreakdown struct {
	Status entity.OrderStatus
	Amount decimal.Decimal
	Orders int
}

// RawEmployeeRevenue represents services aggregated by the user who served them.
type RawEmployeeRevenue struct {
	UserID   uuid.UUID
	Username string
	Name     string
	Amount   decimal.Decimal
	Services int
}

// RawCustomerOrders represents orders aggregated by customer.
type RawCustomerOrders struct {
	CustomerID uuid.UUID
	Name       string
	Orders     int
}
