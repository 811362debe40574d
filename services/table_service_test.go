package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
)

func TestTableNumberUnique(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.tables.Create(&TableReq{TableNumber: 1, Capacity: 4})
	require.NoError(t, err)
	assert.True(t, first.IsAvailable)

	_, err = env.tables.Create(&TableReq{TableNumber: 1, Capacity: 2})
	assert.True(t, apperr.IsConflict(err), "got %v", err)

	// renumbering onto a taken number is rejected too
	second, err := env.tables.Create(&TableReq{TableNumber: 2, Capacity: 2})
	require.NoError(t, err)
	_, err = env.tables.Update(second.ID, &TableReq{TableNumber: 1, Capacity: 2})
	assert.True(t, apperr.IsConflict(err), "got %v", err)

	// keeping your own number is fine
	_, err = env.tables.Update(second.ID, &TableReq{TableNumber: 2, Capacity: 6})
	require.NoError(t, err)
}

func TestTableAvailabilityActions(t *testing.T) {
	env := newTestEnv(t)
	table := env.seedTable(t, 3, 4)

	marked, err := env.tables.MarkUnavailable(table.ID)
	require.NoError(t, err)
	assert.False(t, marked.IsAvailable)

	marked, err = env.tables.MarkAvailable(table.ID)
	require.NoError(t, err)
	assert.True(t, marked.IsAvailable)
}

func TestAvailableTablesIncludeCurrentOrder(t *testing.T) {
	env := newTestEnv(t)
	dish := env.seedMenuItem(t, "Spaghetti Carbonara", "16.99", true)
	free := env.seedTable(t, 1, 2)
	busy := env.seedTable(t, 2, 4)

	order, err := env.orders.Create(&CreateOrderReq{
		TableID: busy.ID,
		Items:   []OrderItemIn{{MenuItemID: dish.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	available, err := env.tables.Available()
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, free.TableNumber, available[0].TableNumber)

	// by_capacity keeps occupied tables, annotated with the seated order
	byCapacity, err := env.tables.ByMinCapacity(4)
	require.NoError(t, err)
	require.Len(t, byCapacity, 1)
	assert.Equal(t, busy.TableNumber, byCapacity[0].TableNumber)
	assert.False(t, byCapacity[0].IsAvailable)
	require.NotNil(t, byCapacity[0].CurrentOrder)
	assert.Equal(t, order.ID, byCapacity[0].CurrentOrder.OrderID)
	assert.Equal(t, "16.99", byCapacity[0].CurrentOrder.Total.StringFixed(2))

	_, err = env.orders.UpdateStatus(order.ID, entity.OrderServed)
	require.NoError(t, err)
	byCapacity, err = env.tables.ByMinCapacity(4)
	require.NoError(t, err)
	require.Len(t, byCapacity, 1)
	assert.True(t, byCapacity[0].IsAvailable)
	assert.Nil(t, byCapacity[0].CurrentOrder)
}
