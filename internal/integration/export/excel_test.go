package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pos-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/pos-dashboard/backend/internal/domain/entity"
)

func TestWriteSnapshot(t *testing.T) {
	generated := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)
	snapshot := &dashboard.Snapshot{
		GeneratedAt: generated,
		Summary: []dashboard.SummaryItem{
			{Label: dashboard.SummaryLabelCustomers, Value: decimal.NewFromInt(2)},
			{Label: dashboard.SummaryLabelReceivable, Value: decimal.NewFromInt(120), IsMoney: true},
		},
		Weekly: dashboard.WeeklySection{
			WeeklyOrders: []dashboard.DayOrders{{Day: "SAT", Orders: 2, Date: &generated}, {Day: "SUN"}},
			NewOrderUpdates: []dashboard.StatusBreakdown{
				{Status: entity.OrderStatusCompleted, Amount: decimal.NewFromInt(60), Orders: 3},
			},
		},
		Monthly: dashboard.MonthlySection{
			Top5Employees: []dashboard.EmployeeRevenue{{UserID: uuid.New(), Username: "maria", Name: "Maria", Amount: decimal.NewFromInt(60), Services: 3}},
		},
		Other: dashboard.OtherSection{
			Top5Customers: []entity.CustomerBalance{
				entity.NewCustomerBalance(entity.Customer{ID: uuid.New(), Name: "Ana"}, decimal.NewFromInt(150), decimal.NewFromInt(30)),
			},
			Top5CustomersByOrder: []dashboard.CustomerOrders{{CustomerID: uuid.New(), Username: "Ana", Orders: 3}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshot(&buf, snapshot))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetSummary, SheetWeekly, SheetStatus, SheetEmployees, SheetCustomers}, f.GetSheetList())

	summary, err := f.GetRows(SheetSummary)
	require.NoError(t, err)
	assert.Equal(t, []string{"Label", "Value"}, summary[0])
	assert.Equal(t, []string{"Receivable", "120"}, summary[2])

	weekly, err := f.GetRows(SheetWeekly)
	require.NoError(t, err)
	require.Len(t, weekly, 3)
	assert.Equal(t, []string{"SAT", "2", "2024-03-17"}, weekly[1])
	assert.Equal(t, "SUN", weekly[2][0])

	employees, err := f.GetRows(SheetEmployees)
	require.NoError(t, err)
	assert.Equal(t, []string{"maria", "Maria", "3", "60"}, employees[1])

	customers, err := f.GetRows(SheetCustomers)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "150", "30", "120"}, customers[1])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "dashboard-2024-03-17.xlsx", FileName(time.Date(2024, 3, 17, 23, 0, 0, 0, time.UTC)))
}
