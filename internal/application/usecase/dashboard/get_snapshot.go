package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/pos-dashboard/backend/internal/application/adapter"
	"github.com/pos-dashboard/backend/internal/domain/entity"
	domainerror "github.com/pos-dashboard/backend/internal/domain/error"
)

// Snapshot is the complete dashboard result for one request.
type Snapshot struct {
	GeneratedAt time.Time
	Summary     []SummaryItem
	Weekly      WeeklySection
	Monthly     MonthlySection
	Other       OtherSection
}

// WeeklySection groups the trailing-week and same-day figures.
type WeeklySection struct {
	WeeklyOrders    []DayOrders
	NewOrderUpdates []StatusBreakdown
	RevenueStats    RevenueStats
}

// MonthlySection groups the month-to-date figures.
type MonthlySection struct {
	Top5Employees   []EmployeeRevenue
	ThisMonthOrders int64
	Receivable      decimal.Decimal
	Revenue         decimal.Decimal
}

// OtherSection groups the all-time customer rankings.
type OtherSection struct {
	Top5Customers        []entity.CustomerBalance
	Top5CustomersByOrder []CustomerOrders
}

// GetSnapshotUseCase builds the dashboard snapshot by running every generator
// concurrently against the entity store.
type GetSnapshotUseCase struct {
	dashboardRepo   DashboardRepository
	summary         *GetSummaryUseCase
	weeklyOrders    *GetWeeklyOrdersUseCase
	statusBreakdown *GetOrderStatusBreakdownUseCase
	revenueStats    *GetRevenueStatsUseCase
	topEmployees    *GetTopEmployeesUseCase
	topCustomers    *GetTopCustomersUseCase
	topByOrder      *GetTopCustomersByOrderUseCase
	clock           adapter.Clock
	location        *time.Location
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
// Calendar windows are computed in location; a nil location means UTC.
func NewGetSnapshotUseCase(
	dashboardRepo DashboardRepository,
	clock adapter.Clock,
	location *time.Location,
) *GetSnapshotUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetSnapshotUseCase{
		dashboardRepo:   dashboardRepo,
		summary:         NewGetSummaryUseCase(dashboardRepo),
		weeklyOrders:    NewGetWeeklyOrdersUseCase(dashboardRepo),
		statusBreakdown: NewGetOrderStatusBreakdownUseCase(dashboardRepo),
		revenueStats:    NewGetRevenueStatsUseCase(dashboardRepo),
		topEmployees:    NewGetTopEmployeesUseCase(dashboardRepo),
		topCustomers:    NewGetTopCustomersUseCase(dashboardRepo),
		topByOrder:      NewGetTopCustomersByOrderUseCase(dashboardRepo),
		clock:           clock,
		location:        location,
	}
}

// Execute builds a fresh snapshot. Any generator failure fails the whole snapshot.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context) (*Snapshot, error) {
	started := time.Now()
	now := uc.clock.Now().In(uc.location)

	today := DayWindow(now)
	month := MonthToDateWindow(now)
	week := TrailingWeekWindow(now)

	var (
		summary         *GetSummaryOutput
		weeklyOrders    []DayOrders
		statusBreakdown []StatusBreakdown
		revenueStats    *RevenueStats
		topEmployees    []EmployeeRevenue
		monthOrders     int64
		topCustomers    []entity.CustomerBalance
		topByOrder      []CustomerOrders
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary, err = uc.summary.Execute(gctx)
		return err
	})
	g.Go(func() (err error) {
		weeklyOrders, err = uc.weeklyOrders.Execute(gctx, GetWeeklyOrdersInput{Window: week})
		return err
	})
	g.Go(func() (err error) {
		statusBreakdown, err = uc.statusBreakdown.Execute(gctx)
		return err
	})
	g.Go(func() (err error) {
		revenueStats, err = uc.revenueStats.Execute(gctx, GetRevenueStatsInput{Day: today})
		return err
	})
	g.Go(func() (err error) {
		topEmployees, err = uc.topEmployees.Execute(gctx, GetTopEmployeesInput{Window: month})
		return err
	})
	g.Go(func() error {
		count, err := uc.dashboardRepo.CountActiveOrders(gctx, month)
		if err != nil {
			return fmt.Errorf("failed to count this month's orders: %w", err)
		}
		monthOrders = count
		return nil
	})
	g.Go(func() (err error) {
		topCustomers, err = uc.topCustomers.Execute(gctx)
		return err
	})
	g.Go(func() (err error) {
		topByOrder, err = uc.topByOrder.Execute(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, uc.wrapError(ctx, err)
	}

	slog.InfoContext(ctx, "Dashboard snapshot built",
		"duration_ms", time.Since(started).Milliseconds(),
		"as_of", now.Format(time.RFC3339),
	)

	return &Snapshot{
		GeneratedAt: now,
		Summary:     summary.Items,
		Weekly: WeeklySection{
			WeeklyOrders:    weeklyOrders,
			NewOrderUpdates: statusBreakdown,
			RevenueStats:    *revenueStats,
		},
		Monthly: MonthlySection{
			Top5Employees:   topEmployees,
			ThisMonthOrders: monthOrders,
			Receivable:      summary.Receivable,
			Revenue:         summary.Revenue,
		},
		Other: OtherSection{
			Top5Customers:        topCustomers,
			Top5CustomersByOrder: topByOrder,
		},
	}, nil
}

// wrapError turns a generator failure into a single dashboard error.
func (uc *GetSnapshotUseCase) wrapError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeDeadlineExceeded,
			domainerror.ErrDeadlineExceeded.Error(),
			err,
		)
	}

	slog.ErrorContext(ctx, "Failed to build dashboard snapshot", "error", err)
	return domainerror.NewDashboardError(
		domainerror.ErrCodeStoreUnavailable,
		domainerror.ErrStoreUnavailable.Error(),
		err,
	)
}
