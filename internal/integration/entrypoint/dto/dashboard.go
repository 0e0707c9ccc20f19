// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/application/usecase/dashboard"
)

const dateLayout = "2006-01-02"

// DashboardResponse represents the response for the dashboard API.
type DashboardResponse struct {
	Data DashboardData `json:"data"`
}

// DashboardData wraps the snapshot.
type DashboardData struct {
	Dashboard SnapshotResponse `json:"dashboard"`
}

// SnapshotResponse represents a dashboard snapshot.
type SnapshotResponse struct {
	GeneratedAt string                `json:"generatedAt"`
	Summary     []SummaryItemResponse `json:"summary"`
	Weekly      WeeklyResponse        `json:"weekly"`
	Monthly     MonthlyResponse       `json:"monthly"`
	Other       OtherResponse         `json:"other"`
}

// SummaryItemResponse represents one labelled summary figure.
type SummaryItemResponse struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	IsMoney bool    `json:"isMoney"`
}

// WeeklyResponse represents the weekly section.
type WeeklyResponse struct {
	WeeklyOrders    []DayOrdersResponse       `json:"weeklyOrders"`
	NewOrderUpdates []StatusBreakdownResponse `json:"newOrderUpdates"`
	RevenueStats    RevenueStatsResponse      `json:"revenueStats"`
}

// DayOrdersResponse represents one weekday slot. Date is omitted for days without orders.
type DayOrdersResponse struct {
	Day    string `json:"day"`
	Orders int    `json:"orders"`
	Date   string `json:"date,omitempty"`
}

// StatusBreakdownResponse represents the active orders sharing one status.
type StatusBreakdownResponse struct {
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
	Orders int     `json:"orders"`
}

// RevenueStatsResponse represents the same-day financial figures.
type RevenueStatsResponse struct {
	TotalOrders     int     `json:"totalOrders"`
	EstimatedProfit float64 `json:"estimatedProfit"`
	AdvancedMoney   float64 `json:"advancedMoney"`
}

// MonthlyResponse represents the monthly section.
type MonthlyResponse struct {
	Top5Employees   []EmployeeRevenueResponse `json:"top5Employees"`
	ThisMonthOrders int64                     `json:"thisMonthOrders"`
	Receivable      float64                   `json:"receivable"`
	Revenue         float64                   `json:"revenue"`
}

// EmployeeRevenueResponse represents the services revenue of one server.
type EmployeeRevenueResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Services int     `json:"services"`
}

// OtherResponse represents the customer rankings section.
type OtherResponse struct {
	Top5Customers        []CustomerBalanceResponse `json:"top5Customers"`
	Top5CustomersByOrder []CustomerOrdersResponse  `json:"top5CustomersByOrder"`
}

// CustomerBalanceResponse represents a customer with its ledger totals.
type CustomerBalanceResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone,omitempty"`
	Debit   float64 `json:"debit"`
	Credit  float64 `json:"credit"`
	Balance float64 `json:"balance"`
}

// CustomerOrdersResponse represents a customer's active order count.
type CustomerOrdersResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Orders   int    `json:"orders"`
}

// money renders an amount as a JSON number.
func money(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// ToDashboardResponse converts a Snapshot to a DashboardResponse DTO.
func ToDashboardResponse(snapshot *dashboard.Snapshot) DashboardResponse {
	summary := make([]SummaryItemResponse, len(snapshot.Summary))
	for i, item := range snapshot.Summary {
		summary[i] = SummaryItemResponse{
			Label:   item.Label,
			Value:   money(item.Value),
			IsMoney: item.IsMoney,
		}
	}

	weeklyOrders := make([]DayOrdersResponse, len(snapshot.Weekly.WeeklyOrders))
	for i, day := range snapshot.Weekly.WeeklyOrders {
		weeklyOrders[i] = DayOrdersResponse{
			Day:    day.Day,
			Orders: day.Orders,
		}
		if day.Date != nil {
			weeklyOrders[i].Date = day.Date.Format(dateLayout)
		}
	}

	statuses := make([]StatusBreakdownResponse, len(snapshot.Weekly.NewOrderUpdates))
	for i, row := range snapshot.Weekly.NewOrderUpdates {
		statuses[i] = StatusBreakdownResponse{
			Status: string(row.Status),
			Amount: money(row.Amount),
			Orders: row.Orders,
		}
	}

	employees := make([]EmployeeRevenueResponse, len(snapshot.Monthly.Top5Employees))
	for i, emp := range snapshot.Monthly.Top5Employees {
		employees[i] = EmployeeRevenueResponse{
			ID:       emp.UserID.String(),
			Username: emp.Username,
			Name:     emp.Name,
			Amount:   money(emp.Amount),
			Services: emp.Services,
		}
	}

	customers := make([]CustomerBalanceResponse, len(snapshot.Other.Top5Customers))
	for i, c := range snapshot.Other.Top5Customers {
		customers[i] = CustomerBalanceResponse{
			ID:      c.ID.String(),
			Name:    c.Name,
			Phone:   c.Phone,
			Debit:   money(c.Debit),
			Credit:  money(c.Credit),
			Balance: money(c.Balance),
		}
	}

	byOrder := make([]CustomerOrdersResponse, len(snapshot.Other.Top5CustomersByOrder))
	for i, c := range snapshot.Other.Top5CustomersByOrder {
		byOrder[i] = CustomerOrdersResponse{
			ID:       c.CustomerID.String(),
			Username: c.Username,
			Orders:   c.Orders,
		}
	}

	stats := snapshot.Weekly.RevenueStats
	return DashboardResponse{
		Data: DashboardData{
			Dashboard: SnapshotResponse{
				GeneratedAt: snapshot.GeneratedAt.Format(time.RFC3339),
				Summary:     summary,
				Weekly: WeeklyResponse{
					WeeklyOrders:    weeklyOrders,
					NewOrderUpdates: statuses,
					RevenueStats: RevenueStatsResponse{
						TotalOrders:     stats.TotalOrders,
						EstimatedProfit: money(stats.EstimatedProfit),
						AdvancedMoney:   money(stats.AdvancedMoney),
					},
				},
				Monthly: MonthlyResponse{
					Top5Employees:   employees,
					ThisMonthOrders: snapshot.Monthly.ThisMonthOrders,
					Receivable:      money(snapshot.Monthly.Receivable),
					Revenue:         money(snapshot.Monthly.Revenue),
				},
				Other: OtherResponse{
					Top5Customers:        customers,
					Top5CustomersByOrder: byOrder,
				},
			},
		},
	}
}
