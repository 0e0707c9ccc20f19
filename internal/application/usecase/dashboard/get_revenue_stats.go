package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
)

// GetRevenueStatsInput represents the input for same-day revenue figures.
type GetRevenueStatsInput struct {
	Day DateWindow
}

// RevenueStats represents the same-day financial figures.
type RevenueStats struct {
	TotalOrders     int
	EstimatedProfit decimal.Decimal
	AdvancedMoney   decimal.Decimal
}

// GetRevenueStatsUseCase handles computing same-day revenue figures.
type GetRevenueStatsUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetRevenueStatsUseCase creates a new GetRevenueStatsUseCase instance.
func NewGetRevenueStatsUseCase(dashboardRepo DashboardRepository) *GetRevenueStatsUseCase {
	return &GetRevenueStatsUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute sums totals and advances of the active orders dated within the day.
// Cash payments of the day are only logged; they do not change the figures.
func (uc *GetRevenueStatsUseCase) Execute(ctx context.Context, input GetRevenueStatsInput) (*RevenueStats, error) {
	orders, err := uc.dashboardRepo.ListActiveOrders(ctx, OrderFilter{Window: input.Day})
	if err != nil {
		return nil, fmt.Errorf("failed to list today's orders: %w", err)
	}

	payments, err := uc.dashboardRepo.ListCashPayments(ctx, input.Day)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's cash payments: %w", err)
	}

	for _, payment := range payments {
		slog.DebugContext(ctx, "Cash payment received today",
			"order_id", payment.OrderID,
			"amount", payment.Amount.String(),
		)
	}

	stats := &RevenueStats{
		EstimatedProfit: decimal.Zero,
		AdvancedMoney:   decimal.Zero,
	}
	for i := range orders {
		if !orders[i].IsActive() {
			continue
		}
		stats.TotalOrders++
		stats.EstimatedProfit = stats.EstimatedProfit.Add(orders[i].Total)
		stats.AdvancedMoney = stats.AdvancedMoney.Add(orders[i].Advance)
	}

	return stats, nil
}
