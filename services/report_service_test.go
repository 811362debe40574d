package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

func TestDailySalesEmptyDay(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.reports.DailySales("2026-01-01")
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalOrders)
	assert.True(t, report.TotalRevenue.IsZero())
	assert.Equal(t, 0, report.TotalPayments)
	assert.True(t, report.TotalPaid.IsZero())
	// no division by zero
	assert.True(t, report.AverageOrderValue.IsZero())
}

func TestDailySales(t *testing.T) {
	env := newTestEnv(t)
	dish := env.seedMenuItem(t, "Chicken Parmesan", "18.99", true)
	today := time.Now().Format(repository.DateLayout)

	var orders []*entity.Order
	for i := 0; i < 3; i++ {
		table := env.seedTable(t, i+1, 4)
		o, err := env.orders.Create(&CreateOrderReq{
			TableID: table.ID,
			Items:   []OrderItemIn{{MenuItemID: dish.ID, Quantity: 1}},
		})
		require.NoError(t, err)
		orders = append(orders, o)
	}

	// one cancelled, one paid and served, one left pending
	_, err := env.orders.UpdateStatus(orders[0].ID, entity.OrderCancelled)
	require.NoError(t, err)
	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID: orders[1].ID, PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = env.payments.Complete(p.ID, "")
	require.NoError(t, err)

	report, err := env.reports.DailySales(today)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalOrders)
	// 3 * 18.99
	assert.True(t, report.TotalRevenue.Equal(mustDec(t, "56.97")), "revenue = %s", report.TotalRevenue)
	assert.Equal(t, 1, report.TotalPayments)
	// 18.99 + 8% tax (1.52)
	assert.True(t, report.TotalPaid.Equal(mustDec(t, "20.51")), "paid = %s", report.TotalPaid)
	assert.Equal(t, 1, report.CancelledOrders)
	assert.Equal(t, 1, report.PendingOrders)
	// 56.97 / 3
	assert.True(t, report.AverageOrderValue.Equal(mustDec(t, "18.99")), "avg = %s", report.AverageOrderValue)
}

func TestDailySalesAverageNotRounded(t *testing.T) {
	env := newTestEnv(t)
	today := time.Now().Format(repository.DateLayout)

	// 2.00 + 3.00 + 5.00 = 10.00 over 3 orders: a non-terminating average
	for i, price := range []string{"2.00", "3.00", "5.00"} {
		dish := env.seedMenuItem(t, string(rune('A'+i))+" Dish", price, true)
		table := env.seedTable(t, i+1, 2)
		_, err := env.orders.Create(&CreateOrderReq{
			TableID: table.ID,
			Items:   []OrderItemIn{{MenuItemID: dish.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	report, err := env.reports.DailySales(today)
	require.NoError(t, err)

	want := mustDec(t, "10.00").Div(decimal.NewFromInt(3))
	assert.True(t, report.AverageOrderValue.Equal(want), "avg = %s", report.AverageOrderValue)
	assert.False(t, report.AverageOrderValue.Equal(mustDec(t, "3.33")))
}

func TestDailySalesRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.reports.DailySales("yesterday")
	assert.True(t, apperr.IsValidation(err), "got %v", err)
}

func TestInventoryAlerts(t *testing.T) {
	env := newTestEnv(t)
	seedStock(t, env, "Salmon Fillets", 15, 15)
	seedStock(t, env, "Ribeye Steaks", 30, 10)

	alerts, err := env.reports.InventoryAlerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Salmon Fillets", alerts[0].ItemName)
}

func TestReservationSummaryRange(t *testing.T) {
	env := newTestEnv(t)
	table := env.seedTable(t, 1, 6)

	seed := func(date, at, status string) {
		req := reservationReq(table.ID)
		req.Date = date
		req.Time = at
		res, err := env.reservations.Create(req)
		require.NoError(t, err)
		switch status {
		case entity.ReservationCompleted:
			_, err = env.reservations.Complete(res.ID)
		case entity.ReservationCancelled:
			_, err = env.reservations.Cancel(res.ID)
		}
		require.NoError(t, err)
	}

	seed("2026-09-10", "18:00", entity.ReservationBooked)
	seed("2026-09-11", "18:00", entity.ReservationCompleted)
	seed("2026-09-12", "18:00", entity.ReservationCancelled)
	// inclusive range boundaries
	seed("2026-09-13", "18:00", entity.ReservationBooked)
	seed("2026-09-09", "18:00", entity.ReservationBooked) // outside

	summary, err := env.reports.ReservationSummaryRange("2026-09-10", "2026-09-13")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalReservations)
	assert.Equal(t, 2, summary.Booked)
	assert.Equal(t, 1, summary.Completed)
	assert.Equal(t, 1, summary.Cancelled)
}

func TestPopularItems(t *testing.T) {
	env := newTestEnv(t)
	pizza := env.seedMenuItem(t, "Margherita Pizza", "14.99", true)
	cola := env.seedMenuItem(t, "Coca Cola", "2.99", true)
	today := time.Now().Format(repository.DateLayout)

	t1 := env.seedTable(t, 1, 4)
	t2 := env.seedTable(t, 2, 4)
	_, err := env.orders.Create(&CreateOrderReq{
		TableID: t1.ID,
		Items: []OrderItemIn{
			{MenuItemID: pizza.ID, Quantity: 2},
			{MenuItemID: cola.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	_, err = env.orders.Create(&CreateOrderReq{
		TableID: t2.ID,
		Items:   []OrderItemIn{{MenuItemID: cola.ID, Quantity: 4}},
	})
	require.NoError(t, err)

	popular, err := env.reports.PopularItems(today)
	require.NoError(t, err)
	require.Len(t, popular, 2)

	assert.Equal(t, "Coca Cola", popular[0].MenuItemName)
	assert.Equal(t, 5, popular[0].TotalQuantity)
	// 5 * 2.99
	assert.True(t, popular[0].TotalRevenue.Equal(mustDec(t, "14.95")), "revenue = %s", popular[0].TotalRevenue)

	assert.Equal(t, "Margherita Pizza", popular[1].MenuItemName)
	assert.Equal(t, 2, popular[1].TotalQuantity)
	assert.True(t, popular[1].TotalRevenue.Equal(mustDec(t, "29.98")))
}

func TestPopularItemsTopTen(t *testing.T) {
	env := newTestEnv(t)
	today := time.Now().Format(repository.DateLayout)

	table := env.seedTable(t, 1, 4)
	items := make([]OrderItemIn, 0, 12)
	for i := 0; i < 12; i++ {
		m := env.seedMenuItem(t, string(rune('A'+i))+" Dish", "5.00", true)
		items = append(items, OrderItemIn{MenuItemID: m.ID, Quantity: i + 1})
	}
	_, err := env.orders.Create(&CreateOrderReq{TableID: table.ID, Items: items})
	require.NoError(t, err)

	popular, err := env.reports.PopularItems(today)
	require.NoError(t, err)
	assert.Len(t, popular, 10)
	// highest quantity first
	assert.Equal(t, 12, popular[0].TotalQuantity)
	assert.Equal(t, 3, popular[9].TotalQuantity)
}
