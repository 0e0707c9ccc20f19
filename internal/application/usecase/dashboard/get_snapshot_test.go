package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-dashboard/backend/internal/domain/entity"
	domainerror "github.com/pos-dashboard/backend/internal/domain/error"
)

func TestGetSnapshotUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	t.Run("assembles every section", func(t *testing.T) {
		repo := newFakeRepository()
		server := &entity.User{ID: uuid.New(), Username: "maria", Name: "Maria"}
		repo.users = []entity.User{*server}
		repo.employees = 1
		customer := repo.addCustomer("Ana")
		repo.addTransaction(customer.ID, 100, 30)
		repo.addTransaction(customer.ID, 50, 0)

		today := day(2024, 3, 17)
		for _, total := range []int64{10, 20, 30} {
			o := repo.addOrder(today, entity.OrderStatusCompleted, total, &customer.ID)
			o.Services = []entity.Service{{
				ID:           uuid.New(),
				Date:         today,
				Status:       entity.OrderStatusCompleted,
				Subtotal:     decimal.NewFromInt(total),
				ServedUserID: &server.ID,
				ServedUser:   server,
			}}
		}
		repo.addOrder(day(2024, 2, 20), entity.OrderStatusPending, 40, nil)
		repo.addOrder(today, entity.OrderStatusCancelled, 999, &customer.ID)

		snapshot, err := NewGetSnapshotUseCase(repo, clock, time.UTC).Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, now, snapshot.GeneratedAt)
		require.Len(t, snapshot.Summary, 8)

		assert.Len(t, snapshot.Weekly.WeeklyOrders, 7)
		sunday := snapshot.Weekly.WeeklyOrders[1]
		assert.Equal(t, "SUN", sunday.Day)
		assert.Equal(t, 3, sunday.Orders)

		require.Len(t, snapshot.Weekly.NewOrderUpdates, 2)
		assert.Equal(t, entity.OrderStatusCompleted, snapshot.Weekly.NewOrderUpdates[0].Status)

		assert.Equal(t, 3, snapshot.Weekly.RevenueStats.TotalOrders)
		assert.True(t, decimal.NewFromInt(60).Equal(snapshot.Weekly.RevenueStats.EstimatedProfit))

		require.Len(t, snapshot.Monthly.Top5Employees, 1)
		assert.True(t, decimal.NewFromInt(60).Equal(snapshot.Monthly.Top5Employees[0].Amount))
		assert.Equal(t, int64(3), snapshot.Monthly.ThisMonthOrders)
		assert.True(t, decimal.NewFromInt(120).Equal(snapshot.Monthly.Receivable))
		assert.True(t, decimal.NewFromInt(100).Equal(snapshot.Monthly.Revenue))

		require.Len(t, snapshot.Other.Top5Customers, 1)
		assert.Equal(t, "Ana", snapshot.Other.Top5Customers[0].Name)
		require.Len(t, snapshot.Other.Top5CustomersByOrder, 1)
		assert.Equal(t, 3, snapshot.Other.Top5CustomersByOrder[0].Orders)
	})

	t.Run("empty store yields a well-formed snapshot", func(t *testing.T) {
		snapshot, err := NewGetSnapshotUseCase(newFakeRepository(), clock, nil).Execute(context.Background())

		require.NoError(t, err)
		assert.Len(t, snapshot.Summary, 8)
		assert.Len(t, snapshot.Weekly.WeeklyOrders, 7)
		assert.Empty(t, snapshot.Weekly.NewOrderUpdates)
		assert.Empty(t, snapshot.Monthly.Top5Employees)
		assert.Empty(t, snapshot.Other.Top5Customers)
		assert.Empty(t, snapshot.Other.Top5CustomersByOrder)
		assert.True(t, snapshot.Monthly.Revenue.IsZero())
	})

	t.Run("store failure fails the whole snapshot", func(t *testing.T) {
		repo := newFakeRepository()
		repo.err = errors.New("connection reset")

		snapshot, err := NewGetSnapshotUseCase(repo, clock, time.UTC).Execute(context.Background())

		assert.Nil(t, snapshot)
		var dashErr *domainerror.DashboardError
		require.ErrorAs(t, err, &dashErr)
		assert.Equal(t, domainerror.ErrCodeStoreUnavailable, dashErr.Code)
		assert.ErrorIs(t, err, repo.err)
	})

	t.Run("expired deadline is reported as such", func(t *testing.T) {
		repo := newFakeRepository()
		repo.err = context.DeadlineExceeded

		_, err := NewGetSnapshotUseCase(repo, clock, time.UTC).Execute(context.Background())

		var dashErr *domainerror.DashboardError
		require.ErrorAs(t, err, &dashErr)
		assert.Equal(t, domainerror.ErrCodeDeadlineExceeded, dashErr.Code)
	})

	t.Run("windows are computed in the business location", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		// 02:00 UTC on the 1st is still the last day of February locally.
		late := fixedClock{now: time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)}
		repo := newFakeRepository()
		repo.addOrder(time.Date(2024, 2, 29, 0, 0, 0, 0, loc), entity.OrderStatusCompleted, 10, nil)

		snapshot, err := NewGetSnapshotUseCase(repo, late, loc).Execute(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, snapshot.Weekly.RevenueStats.TotalOrders)
		assert.Equal(t, int64(1), snapshot.Monthly.ThisMonthOrders)
	})
}
