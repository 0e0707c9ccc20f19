package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// Summary labels, in the order consumers read them.
const (
	SummaryLabelCustomers  = "Customers"
	SummaryLabelReceivable = "Receivable"
	SummaryLabelProducts   = "Products"
	SummaryLabelEmployee   = "Employee"
	SummaryLabelUsers      = "Users"
	SummaryLabelMenus      = "Menus"
	SummaryLabelOrders     = "Orders"
	SummaryLabelRevenue    = "Revenue"
)

// SummaryItem is a single labelled figure of the dashboard summary.
type SummaryItem struct {
	Label   string
	Value   decimal.Decimal
	IsMoney bool
}

// GetSummaryOutput represents the global counts and totals of the business.
// Items always holds eight entries in label order; Receivable and Revenue
// repeat the matching item values.
type GetSummaryOutput struct {
	Items      []SummaryItem
	Receivable decimal.Decimal
	Revenue    decimal.Decimal
}

// GetSummaryUseCase handles computing the global dashboard summary.
type GetSummaryUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(dashboardRepo DashboardRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the summary over all active orders, menus and customers.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	orders, err := uc.dashboardRepo.ListActiveOrders(ctx, OrderFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list active orders: %w", err)
	}

	menus, err := uc.dashboardRepo.ListMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menus: %w", err)
	}

	customers, err := uc.dashboardRepo.ListCustomerBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer balances: %w", err)
	}

	employees, err := uc.dashboardRepo.CountEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	users, err := uc.dashboardRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	menuCount, err := uc.dashboardRepo.CountMenus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count menus: %w", err)
	}

	receivable := sumReceivable(customers)
	revenue, activeOrders := sumRevenue(orders)

	products := 0
	for _, menu := range menus {
		products += len(menu.Products)
	}

	return &GetSummaryOutput{
		Items: []SummaryItem{
			{Label: SummaryLabelCustomers, Value: decimal.NewFromInt(int64(len(customers)))},
			{Label: SummaryLabelReceivable, Value: receivable, IsMoney: true},
			{Label: SummaryLabelProducts, Value: decimal.NewFromInt(int64(products))},
			{Label: SummaryLabelEmployee, Value: decimal.NewFromInt(employees)},
			{Label: SummaryLabelUsers, Value: decimal.NewFromInt(users)},
			{Label: SummaryLabelMenus, Value: decimal.NewFromInt(menuCount)},
			{Label: SummaryLabelOrders, Value: decimal.NewFromInt(int64(activeOrders))},
			{Label: SummaryLabelRevenue, Value: revenue, IsMoney: true},
		},
		Receivable: receivable,
		Revenue:    revenue,
	}, nil
}

// sumReceivable adds up the balance of every customer, active or not.
func sumReceivable(customers []entity.CustomerBalance) decimal.Decimal {
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.Balance)
	}
	return total
}

// sumRevenue adds up order totals, skipping cancelled orders the store may still return.
func sumRevenue(orders []entity.Order) (decimal.Decimal, int) {
	total := decimal.Zero
	count := 0
	for i := range orders {
		if !orders[i].IsActive() {
			continue
		}
		total = total.Add(orders[i].Total)
		count++
	}
	return total, count
}
