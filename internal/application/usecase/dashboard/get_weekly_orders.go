package dashboard

import (
	"context"
	"fmt"
	"time"
)

// weekDayLabels holds the fixed weekly template, starting on Saturday.
var weekDayLabels = [weekLength]string{"SAT", "SUN", "MON", "TUE", "WED", "THU", "FRI"}

// DayOrders is the order count of one weekday slot. Date is nil when no order fell on that day.
type DayOrders struct {
	Day    string
	Orders int
	Date   *time.Time
}

// GetWeeklyOrdersInput represents the input for getting the weekly order series.
type GetWeeklyOrdersInput struct {
	Window DateWindow
}

// GetWeeklyOrdersUseCase handles bucketing active orders by weekday.
type GetWeeklyOrdersUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetWeeklyOrdersUseCase creates a new GetWeeklyOrdersUseCase instance.
func NewGetWeeklyOrdersUseCase(dashboardRepo DashboardRepository) *GetWeeklyOrdersUseCase {
	return &GetWeeklyOrdersUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns exactly seven slots, SAT through FRI, filled with the order
// count of the matching date inside the window.
func (uc *GetWeeklyOrdersUseCase) Execute(ctx context.Context, input GetWeeklyOrdersInput) ([]DayOrders, error) {
	rows, err := uc.dashboardRepo.GetOrderCountsByDate(ctx, input.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to get order counts by date: %w", err)
	}

	days := make([]DayOrders, weekLength)
	for i, label := range weekDayLabels {
		days[i] = DayOrders{Day: label}
	}

	// One row per calendar date; if two rows ever share a slot the later one wins.
	for _, row := range rows {
		date := row.Date
		idx := weekDayIndex(date.Weekday())
		days[idx].Orders = row.Count
		days[idx].Date = &date
	}

	return days, nil
}

// weekDayIndex maps a weekday onto the Saturday-first template.
func weekDayIndex(day time.Weekday) int {
	if day == time.Saturday {
		return 0
	}
	return int(day) + 1
}
