package dashboard

import (
	"cmp"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// GetTopCustomersUseCase handles ranking customers by derived balance.
type GetTopCustomersUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetTopCustomersUseCase creates a new GetTopCustomersUseCase instance.
func NewGetTopCustomersUseCase(dashboardRepo DashboardRepository) *GetTopCustomersUseCase {
	return &GetTopCustomersUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns the TopN customers with the highest balance.
func (uc *GetTopCustomersUseCase) Execute(ctx context.Context) ([]entity.CustomerBalance, error) {
	customers, err := uc.dashboardRepo.ListCustomerBalances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer balances: %w", err)
	}

	return rankDescending(customers, TopN, func(a, b entity.CustomerBalance) int {
		return a.Balance.Cmp(b.Balance)
	}), nil
}

// CustomerOrders represents the number of active orders placed by a customer.
type CustomerOrders struct {
	CustomerID uuid.UUID
	Username   string
	Orders     int
}

// GetTopCustomersByOrderUseCase handles ranking customers by active order count.
type GetTopCustomersByOrderUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetTopCustomersByOrderUseCase creates a new GetTopCustomersByOrderUseCase instance.
func NewGetTopCustomersByOrderUseCase(dashboardRepo DashboardRepository) *GetTopCustomersByOrderUseCase {
	return &GetTopCustomersByOrderUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns the TopN customers with the most active orders.
// Orders whose customer cannot be resolved are not counted.
func (uc *GetTopCustomersByOrderUseCase) Execute(ctx context.Context) ([]CustomerOrders, error) {
	rows, err := uc.dashboardRepo.GetCustomerOrderCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer order counts: %w", err)
	}

	customers := make([]CustomerOrders, len(rows))
	for i, row := range rows {
		customers[i] = CustomerOrders{
			CustomerID: row.CustomerID,
			Username:   row.Name,
			Orders:     row.Orders,
		}
	}

	return rankDescending(customers, TopN, func(a, b CustomerOrders) int {
		return cmp.Compare(a.Orders, b.Orders)
	}), nil
}
