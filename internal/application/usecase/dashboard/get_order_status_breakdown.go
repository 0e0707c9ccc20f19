package dashboard

import (
	"cmp"
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// StatusBreakdown represents the active orders sharing one status.
type StatusBreakdown struct {
	Status entity.OrderStatus
	Amount decimal.Decimal
	Orders int
}

// GetOrderStatusBreakdownUseCase handles grouping active orders by status.
// The breakdown covers the whole order history, not a single day.
type GetOrderStatusBreakdownUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetOrderStatusBreakdownUseCase creates a new GetOrderStatusBreakdownUseCase instance.
func NewGetOrderStatusBreakdownUseCase(dashboardRepo DashboardRepository) *GetOrderStatusBreakdownUseCase {
	return &GetOrderStatusBreakdownUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns one row per active status, ordered by order count descending.
func (uc *GetOrderStatusBreakdownUseCase) Execute(ctx context.Context) ([]StatusBreakdown, error) {
	rows, err := uc.dashboardRepo.GetOrderStatusBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get order status breakdown: %w", err)
	}

	breakdown := make([]StatusBreakdown, 0, len(rows))
	for _, row := range rows {
		if !row.Status.IsActive() {
			continue
		}
		breakdown = append(breakdown, StatusBreakdown{
			Status: row.Status,
			Amount: row.Amount,
			Orders: row.Orders,
		})
	}

	return rankDescending(breakdown, len(breakdown), func(a, b StatusBreakdown) int {
		return cmp.Compare(a.Orders, b.Orders)
	}), nil
}
