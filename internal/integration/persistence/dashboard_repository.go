// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pos-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/pos-dashboard/backend/internal/domain/entity"
	"github.com/pos-dashboard/backend/internal/integration/persistence/model"
)

// calendarDate is the parameter format used against DATE columns.
const calendarDate = "2006-01-02"

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// dateBounds formats a window as calendar dates in the window's own location.
func dateBounds(window dashboard.DateWindow) (string, string) {
	return window.From.Format(calendarDate), window.To.Format(calendarDate)
}

// inWindow restricts a DATE column to the window.
func inWindow(column string, window dashboard.DateWindow) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		from, to := dateBounds(window)
		return db.Where(column+" >= ? AND "+column+" < ?", from, to)
	}
}

// CountEmployees returns the number of employees.
func (r *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

// CountUsers returns the number of users.
func (r *dashboardRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CountMenus returns the number of menus.
func (r *dashboardRepository) CountMenus(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.MenuModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count menus: %w", err)
	}
	return count, nil
}

// ListMenus returns every menu with its product entries.
func (r *dashboardRepository) ListMenus(ctx context.Context) ([]entity.Menu, error) {
	var models []model.MenuModel
	err := r.db.WithContext(ctx).
		Preload("Products").
		Order("created_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	menus := make([]entity.Menu, len(models))
	for i := range models {
		menus[i] = *models[i].ToEntity()
	}
	return menus, nil
}

// ListActiveOrders returns non-cancelled orders with customer, payments and
// services (with menu and served user) loaded.
func (r *dashboardRepository) ListActiveOrders(ctx context.Context, filter dashboard.OrderFilter) ([]entity.Order, error) {
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Payments").
		Preload("Services.Menu").
		Preload("Services.ServedUser").
		Where("status <> ?", string(entity.OrderStatusCancelled))

	if !filter.Window.IsZero() {
		query = query.Scopes(inWindow("date", filter.Window))
	}

	var models []model.OrderModel
	if err := query.Order("date, created_at").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}

	orders := make([]entity.Order, len(models))
	for i := range models {
		orders[i] = *models[i].ToEntity()
	}
	return orders, nil
}

// CountActiveOrders returns the number of non-cancelled orders dated within the window.
func (r *dashboardRepository) CountActiveOrders(ctx context.Context, window dashboard.DateWindow) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("status <> ?", string(entity.OrderStatusCancelled)).
		Scopes(inWindow("date", window)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active orders: %w", err)
	}
	return count, nil
}

// ListCustomerBalances returns every customer with ledger totals.
// Customers without transactions get zero totals.
func (r *dashboardRepository) ListCustomerBalances(ctx context.Context) ([]entity.CustomerBalance, error) {
	var results []struct {
		ID     uuid.UUID       `gorm:"column:id"`
		Name   string          `gorm:"column:name"`
		Phone  string          `gorm:"column:phone"`
		Debit  decimal.Decimal `gorm:"column:debit"`
		Credit decimal.Decimal `gorm:"column:credit"`
	}

	query := `
		SELECT
			c.id,
			c.name,
			COALESCE(c.phone, '') as phone,
			COALESCE(SUM(t.debit), 0) as debit,
			COALESCE(SUM(t.credit), 0) as credit
		FROM customers c
		LEFT JOIN transactions t ON t.customer_id = c.id
		GROUP BY c.id, c.name, c.phone, c.created_at
		ORDER BY c.created_at
	`

	if err := r.db.WithContext(ctx).Raw(query).Scan(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer balances: %w", err)
	}

	balances := make([]entity.CustomerBalance, len(results))
	for i, res := range results {
		balances[i] = entity.NewCustomerBalance(
			entity.Customer{ID: res.ID, Name: res.Name, Phone: res.Phone},
			res.Debit,
			res.Credit,
		)
	}
	return balances, nil
}

// GetOrderCountsByDate returns non-cancelled order counts grouped by order date.
func (r *dashboardRepository) GetOrderCountsByDate(ctx context.Context, window dashboard.DateWindow) ([]dashboard.RawDailyOrders, error) {
	var results []struct {
		Date   time.Time       `gorm:"column:date"`
		Amount decimal.Decimal `gorm:"column:amount"`
		Count  int             `gorm:"column:order_count"`
	}

	from, to := dateBounds(window)
	query := `
		SELECT
			date,
			COALESCE(SUM(total), 0) as amount,
			COUNT(*) as order_count
		FROM orders
		WHERE status <> ?
			AND date >= ?
			AND date < ?
		GROUP BY date
		ORDER BY date
	`

	err := r.db.WithContext(ctx).
		Raw(query, string(entity.OrderStatusCancelled), from, to).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order counts by date: %w", err)
	}

	rows := make([]dashboard.RawDailyOrders, len(results))
	for i, res := range results {
		rows[i] = dashboard.RawDailyOrders{
			Date:   res.Date,
			Amount: res.Amount,
			Count:  res.Count,
		}
	}
	return rows, nil
}

// GetOrderStatusBreakdown returns non-cancelled orders grouped by status.
func (r *dashboardRepository) GetOrderStatusBreakdown(ctx context.Context) ([]dashboard.RawStatusBreakdown, error) {
	var results []struct {
		Status string          `gorm:"column:status"`
		Amount decimal.Decimal `gorm:"column:amount"`
		Orders int             `gorm:"column:orders"`
	}

	query := `
		SELECT
			status,
			COALESCE(SUM(total), 0) as amount,
			COUNT(*) as orders
		FROM orders
		WHERE status <> ?
		GROUP BY status
		ORDER BY MIN(created_at)
	`

	err := r.db.WithContext(ctx).
		Raw(query, string(entity.OrderStatusCancelled)).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order status breakdown: %w", err)
	}

	rows := make([]dashboard.RawStatusBreakdown, len(results))
	for i, res := range results {
		rows[i] = dashboard.RawStatusBreakdown{
			Status: entity.OrderStatus(res.Status),
			Amount: res.Amount,
			Orders: res.Orders,
		}
	}
	return rows, nil
}

// ListCashPayments returns cash payments dated within the window.
func (r *dashboardRepository) ListCashPayments(ctx context.Context, window dashboard.DateWindow) ([]entity.Payment, error) {
	var models []model.OrderPaymentModel
	err := r.db.WithContext(ctx).
		Where("method = ?", string(entity.PaymentMethodCash)).
		Scopes(inWindow("date", window)).
		Order("date, created_at").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cash payments: %w", err)
	}

	payments := make([]entity.Payment, len(models))
	for i := range models {
		payments[i] = *models[i].ToEntity()
	}
	return payments, nil
}

// GetServedUserRevenue returns non-cancelled services within the window grouped by server.
// Services without a server, or whose server no longer exists, are left out.
func (r *dashboardRepository) GetServedUserRevenue(ctx context.Context, window dashboard.DateWindow) ([]dashboard.RawEmployeeRevenue, error) {
	var results []struct {
		UserID   uuid.UUID       `gorm:"column:user_id"`
		Username string          `gorm:"column:username"`
		Name     string          `gorm:"column:name"`
		Amount   decimal.Decimal `gorm:"column:amount"`
		Services int             `gorm:"column:services"`
	}

	from, to := dateBounds(window)
	query := `
		SELECT
			u.id as user_id,
			u.username,
			u.name,
			COALESCE(SUM(s.subtotal), 0) as amount,
			COUNT(s.id) as services
		FROM services s
		INNER JOIN users u ON u.id = s.served_user_id
		WHERE s.status <> ?
			AND s.date >= ?
			AND s.date < ?
		GROUP BY u.id, u.username, u.name
		ORDER BY MIN(s.created_at)
	`

	err := r.db.WithContext(ctx).
		Raw(query, string(entity.OrderStatusCancelled), from, to).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get served user revenue: %w", err)
	}

	rows := make([]dashboard.RawEmployeeRevenue, len(results))
	for i, res := range results {
		rows[i] = dashboard.RawEmployeeRevenue{
			UserID:   res.UserID,
			Username: res.Username,
			Name:     res.Name,
			Amount:   res.Amount,
			Services: res.Services,
		}
	}
	return rows, nil
}

// GetCustomerOrderCounts returns non-cancelled orders grouped by customer.
// Orders without a resolvable customer are left out.
func (r *dashboardRepository) GetCustomerOrderCounts(ctx context.Context) ([]dashboard.RawCustomerOrders, error) {
	var results []struct {
		CustomerID uuid.UUID `gorm:"column:customer_id"`
		Name       string    `gorm:"column:name"`
		Orders     int       `gorm:"column:orders"`
	}

	query := `
		SELECT
			c.id as customer_id,
			c.name,
			COUNT(o.id) as orders
		FROM orders o
		INNER JOIN customers c ON c.id = o.customer_id
		WHERE o.status <> ?
		GROUP BY c.id, c.name
		ORDER BY MIN(o.created_at)
	`

	err := r.db.WithContext(ctx).
		Raw(query, string(entity.OrderStatusCancelled)).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get customer order counts: %w", err)
	}

	rows := make([]dashboard.RawCustomerOrders, len(results))
	for i, res := range results {
		rows[i] = dashboard.RawCustomerOrders{
			CustomerID: res.CustomerID,
			Name:       res.Name,
			Orders:     res.Orders,
		}
	}
	return rows, nil
}
