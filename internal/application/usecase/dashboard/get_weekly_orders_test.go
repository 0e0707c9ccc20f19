package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

func TestGetWeeklyOrdersUseCase_Execute(t *testing.T) {
	// Sunday 2024-03-17
	now := time.Date(2024, 3, 17, 15, 0, 0, 0, time.UTC)
	window := TrailingWeekWindow(now)

	t.Run("no orders yields seven empty slots", func(t *testing.T) {
		repo := newFakeRepository()

		days, err := NewGetWeeklyOrdersUseCase(repo).Execute(context.Background(), GetWeeklyOrdersInput{Window: window})

		require.NoError(t, err)
		require.Len(t, days, 7)
		for i, d := range days {
			assert.Equal(t, weekDayLabels[i], d.Day)
			assert.Zero(t, d.Orders)
			assert.Nil(t, d.Date)
		}
	})

	t.Run("orders land on their weekday slot", func(t *testing.T) {
		repo := newFakeRepository()
		saturday := day(2024, 3, 16)
		monday := day(2024, 3, 11)
		repo.addOrder(saturday, entity.OrderStatusCompleted, 10, nil)
		repo.addOrder(saturday, entity.OrderStatusPending, 10, nil)
		repo.addOrder(saturday, entity.OrderStatusCancelled, 10, nil)
		repo.addOrder(monday, entity.OrderStatusCompleted, 10, nil)
		// Outside the window.
		repo.addOrder(day(2024, 3, 10), entity.OrderStatusCompleted, 10, nil)

		days, err := NewGetWeeklyOrdersUseCase(repo).Execute(context.Background(), GetWeeklyOrdersInput{Window: window})

		require.NoError(t, err)
		require.Len(t, days, 7)

		assert.Equal(t, "SAT", days[0].Day)
		assert.Equal(t, 2, days[0].Orders)
		require.NotNil(t, days[0].Date)
		assert.True(t, saturday.Equal(*days[0].Date))

		assert.Equal(t, "MON", days[2].Day)
		assert.Equal(t, 1, days[2].Orders)

		assert.Equal(t, "SUN", days[1].Day)
		assert.Zero(t, days[1].Orders)
		assert.Nil(t, days[1].Date)
	})

	t.Run("labels are stable across calls", func(t *testing.T) {
		repo := newFakeRepository()
		uc := NewGetWeeklyOrdersUseCase(repo)

		first, err := uc.Execute(context.Background(), GetWeeklyOrdersInput{Window: window})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), GetWeeklyOrdersInput{Window: window})
		require.NoError(t, err)

		for i := range first {
			assert.Equal(t, first[i].Day, second[i].Day)
		}
	})
}

func TestWeekDayIndex(t *testing.T) {
	tests := []struct {
		day      time.Weekday
		expected int
	}{
		{time.Saturday, 0},
		{time.Sunday, 1},
		{time.Monday, 2},
		{time.Tuesday, 3},
		{time.Wednesday, 4},
		{time.Thursday, 5},
		{time.Friday, 6},
	}

	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, weekDayIndex(tt.day))
		})
	}
}
