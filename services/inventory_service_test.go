package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
)

func seedStock(t *testing.T, env *testEnv, name string, quantity, reorder int) *entity.Inventory {
	t.Helper()
	item, err := env.inventory.Create(&InventoryReq{
		ItemName:     name,
		Quantity:     quantity,
		ReorderLevel: reorder,
		CostPerUnit:  mustDec(t, "2.50"),
	})
	require.NoError(t, err)
	return item
}

func TestRestock(t *testing.T) {
	env := newTestEnv(t)
	item := seedStock(t, env, "Flour", 50, 10)

	restocked, err := env.inventory.Restock(item.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 80, restocked.Quantity)

	_, err = env.inventory.Restock(item.ID, 0)
	assert.True(t, apperr.IsValidation(err), "got %v", err)
	_, err = env.inventory.Restock(item.ID, -5)
	assert.True(t, apperr.IsValidation(err), "got %v", err)
}

func TestUpdateQuantityFloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	item := seedStock(t, env, "Eggs", 50, 10)

	updated, err := env.inventory.UpdateQuantity(item.ID, -20)
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Quantity)

	_, err = env.inventory.UpdateQuantity(item.ID, -31)
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	// rejected delta leaves the row untouched
	reloaded, err := env.inventory.Get(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, reloaded.Quantity)

	// draining to exactly zero is allowed
	updated, err = env.inventory.UpdateQuantity(item.ID, -30)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)
}

func TestLowStockBoundary(t *testing.T) {
	env := newTestEnv(t)
	seedStock(t, env, "Lettuce", 10, 10)  // at the level: low
	seedStock(t, env, "Tomatoes", 9, 10)  // below: low
	seedStock(t, env, "Olive Oil", 11, 10) // above: fine

	low, err := env.inventory.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 2)
	names := []string{low[0].ItemName, low[1].ItemName}
	assert.Contains(t, names, "Lettuce")
	assert.Contains(t, names, "Tomatoes")
	for _, item := range low {
		assert.True(t, item.IsLowStock)
	}
}

func TestInventoryNameUnique(t *testing.T) {
	env := newTestEnv(t)
	seedStock(t, env, "Pasta", 100, 25)

	_, err := env.inventory.Create(&InventoryReq{ItemName: "Pasta", Quantity: 1})
	assert.True(t, apperr.IsConflict(err), "got %v", err)
}

func TestInventoryValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.inventory.Create(&InventoryReq{ItemName: "Salt", Quantity: -1})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	_, err = env.inventory.Create(&InventoryReq{ItemName: "Salt", ReorderLevel: -1})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	// default unit
	item, err := env.inventory.Create(&InventoryReq{ItemName: "Salt", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, "units", item.Unit)
}
