package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pos-dashboard/backend/internal/domain/entity"
)

// fakeRepository is an in-memory DashboardRepository that aggregates like the real store.
type fakeRepository struct {
	mu sync.Mutex

	orders       []entity.Order
	customers    []entity.Customer
	transactions []entity.Transaction
	menus        []entity.Menu
	users        []entity.User
	employees    int64

	// err, when set, is returned by every method.
	err error
	// calls counts invocations per method.
	calls map[string]int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{calls: map[string]int{}}
}

func (f *fakeRepository) track(method string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
	return f.err
}

func (f *fakeRepository) addCustomer(name string) entity.Customer {
	c := entity.Customer{ID: uuid.New(), Name: name}
	f.customers = append(f.customers, c)
	return c
}

func (f *fakeRepository) addTransaction(customerID uuid.UUID, debit, credit int64) {
	f.transactions = append(f.transactions, entity.Transaction{
		ID:         uuid.New(),
		CustomerID: customerID,
		Debit:      decimal.NewFromInt(debit),
		Credit:     decimal.NewFromInt(credit),
	})
}

func (f *fakeRepository) addOrder(date time.Time, status entity.OrderStatus, total int64, customerID *uuid.UUID) *entity.Order {
	f.orders = append(f.orders, entity.Order{
		ID:         uuid.New(),
		Date:       date,
		Status:     status,
		Total:      decimal.NewFromInt(total),
		Advance:    decimal.Zero,
		Balance:    decimal.Zero,
		CustomerID: customerID,
	})
	return &f.orders[len(f.orders)-1]
}

func (f *fakeRepository) CountEmployees(ctx context.Context) (int64, error) {
	if err := f.track("CountEmployees"); err != nil {
		return 0, err
	}
	return f.employees, nil
}

func (f *fakeRepository) CountUsers(ctx context.Context) (int64, error) {
	if err := f.track("CountUsers"); err != nil {
		return 0, err
	}
	return int64(len(f.users)), nil
}

func (f *fakeRepository) CountMenus(ctx context.Context) (int64, error) {
	if err := f.track("CountMenus"); err != nil {
		return 0, err
	}
	return int64(len(f.menus)), nil
}

func (f *fakeRepository) ListMenus(ctx context.Context) ([]entity.Menu, error) {
	if err := f.track("ListMenus"); err != nil {
		return nil, err
	}
	return f.menus, nil
}

func (f *fakeRepository) ListActiveOrders(ctx context.Context, filter OrderFilter) ([]entity.Order, error) {
	if err := f.track("ListActiveOrders"); err != nil {
		return nil, err
	}
	var orders []entity.Order
	for _, o := range f.orders {
		if !o.IsActive() {
			continue
		}
		if !filter.Window.IsZero() && !filter.Window.Contains(o.Date) {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (f *fakeRepository) CountActiveOrders(ctx context.Context, window DateWindow) (int64, error) {
	if err := f.track("CountActiveOrders"); err != nil {
		return 0, err
	}
	var count int64
	for _, o := range f.orders {
		if o.IsActive() && window.Contains(o.Date) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepository) ListCustomerBalances(ctx context.Context) ([]entity.CustomerBalance, error) {
	if err := f.track("ListCustomerBalances"); err != nil {
		return nil, err
	}
	balances := make([]entity.CustomerBalance, 0, len(f.customers))
	for _, c := range f.customers {
		debit, credit := decimal.Zero, decimal.Zero
		for _, t := range f.transactions {
			if t.CustomerID == c.ID {
				debit = debit.Add(t.Debit)
				credit = credit.Add(t.Credit)
			}
		}
		balances = append(balances, entity.NewCustomerBalance(c, debit, credit))
	}
	return balances, nil
}

func (f *fakeRepository) GetOrderCountsByDate(ctx context.Context, window DateWindow) ([]RawDailyOrders, error) {
	if err := f.track("GetOrderCountsByDate"); err != nil {
		return nil, err
	}
	var rows []RawDailyOrders
	index := map[time.Time]int{}
	for _, o := range f.orders {
		if !o.IsActive() || !window.Contains(o.Date) {
			continue
		}
		i, ok := index[o.Date]
		if !ok {
			index[o.Date] = len(rows)
			rows = append(rows, RawDailyOrders{Date: o.Date, Amount: decimal.Zero})
			i = len(rows) - 1
		}
		rows[i].Count++
		rows[i].Amount = rows[i].Amount.Add(o.Total)
	}
	return rows, nil
}

func (f *fakeRepository) GetOrderStatusBreakdown(ctx context.Context) ([]RawStatusBreakdown, error) {
	if err := f.track("GetOrderStatusBreakdown"); err != nil {
		return nil, err
	}
	var rows []RawStatusBreakdown
	index := map[entity.OrderStatus]int{}
	for _, o := range f.orders {
		if !o.IsActive() {
			continue
		}
		i, ok := index[o.Status]
		if !ok {
			index[o.Status] = len(rows)
			rows = append(rows, RawStatusBreakdown{Status: o.Status, Amount: decimal.Zero})
			i = len(rows) - 1
		}
		rows[i].Orders++
		rows[i].Amount = rows[i].Amount.Add(o.Total)
	}
	return rows, nil
}

func (f *fakeRepository) ListCashPayments(ctx context.Context, window DateWindow) ([]entity.Payment, error) {
	if err := f.track("ListCashPayments"); err != nil {
		return nil, err
	}
	var payments []entity.Payment
	for _, o := range f.orders {
		for _, p := range o.Payments {
			if p.Method == entity.PaymentMethodCash && window.Contains(p.Date) {
				payments = append(payments, p)
			}
		}
	}
	return payments, nil
}

func (f *fakeRepository) GetServedUserRevenue(ctx context.Context, window DateWindow) ([]RawEmployeeRevenue, error) {
	if err := f.track("GetServedUserRevenue"); err != nil {
		return nil, err
	}
	var rows []RawEmployeeRevenue
	index := map[uuid.UUID]int{}
	for _, o := range f.orders {
		for _, s := range o.Services {
			if !s.IsActive() || s.ServedUser == nil || !window.Contains(s.Date) {
				continue
			}
			i, ok := index[s.ServedUser.ID]
			if !ok {
				index[s.ServedUser.ID] = len(rows)
				rows = append(rows, RawEmployeeRevenue{
					UserID:   s.ServedUser.ID,
					Username: s.ServedUser.Username,
					Name:     s.ServedUser.Name,
					Amount:   decimal.Zero,
				})
				i = len(rows) - 1
			}
			rows[i].Services++
			rows[i].Amount = rows[i].Amount.Add(s.Subtotal)
		}
	}
	return rows, nil
}

func (f *fakeRepository) GetCustomerOrderCounts(ctx context.Context) ([]RawCustomerOrders, error) {
	if err := f.track("GetCustomerOrderCounts"); err != nil {
		return nil, err
	}
	names := map[uuid.UUID]string{}
	for _, c := range f.customers {
		names[c.ID] = c.Name
	}
	var rows []RawCustomerOrders
	index := map[uuid.UUID]int{}
	for _, o := range f.orders {
		if !o.IsActive() || o.CustomerID == nil {
			continue
		}
		name, known := names[*o.CustomerID]
		if !known {
			continue
		}
		i, ok := index[*o.CustomerID]
		if !ok {
			index[*o.CustomerID] = len(rows)
			rows = append(rows, RawCustomerOrders{CustomerID: *o.CustomerID, Name: name})
			i = len(rows) - 1
		}
		rows[i].Orders++
	}
	return rows, nil
}

// fixedClock always returns the same instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// day returns midnight UTC of the given date.
func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
