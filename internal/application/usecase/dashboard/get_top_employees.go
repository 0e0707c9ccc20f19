package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetTopEmployeesInput represents the input for ranking staff by service revenue.
type GetTopEmployeesInput struct {
	Window DateWindow
}

// EmployeeRevenue represents the services revenue attributed to one server.
type EmployeeRevenue struct {
	UserID   uuid.UUID
	Username string
	Name     string
	Amount   decimal.Decimal
	Services int
}

// GetTopEmployeesUseCase handles ranking servers by the subtotal of the services they served.
type GetTopEmployeesUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetTopEmployeesUseCase creates a new GetTopEmployeesUseCase instance.
func NewGetTopEmployeesUseCase(dashboardRepo DashboardRepository) *GetTopEmployeesUseCase {
	return &GetTopEmployeesUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute returns the top servers of the window by amount, at most TopN.
func (uc *GetTopEmployeesUseCase) Execute(ctx context.Context, input GetTopEmployeesInput) ([]EmployeeRevenue, error) {
	rows, err := uc.dashboardRepo.GetServedUserRevenue(ctx, input.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to get served user revenue: %w", err)
	}

	employees := make([]EmployeeRevenue, len(rows))
	for i, row := range rows {
		employees[i] = EmployeeRevenue{
			UserID:   row.UserID,
			Username: row.Username,
			Name:     row.Name,
			Amount:   row.Amount,
			Services: row.Services,
		}
	}

	return rankDescending(employees, TopN, func(a, b EmployeeRevenue) int {
		return a.Amount.Cmp(b.Amount)
	}), nil
}
