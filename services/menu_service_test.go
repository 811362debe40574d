package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

func TestMenuItemValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.menu.Create(&MenuItemReq{
		Name: "Mystery Dish", Category: "SNACK", Price: mustDec(t, "5.00"),
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	_, err = env.menu.Create(&MenuItemReq{
		Name: "Free Dish", Category: entity.CategoryMain, Price: mustDec(t, "0"),
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	_, err = env.menu.Create(&MenuItemReq{
		Name: "Refund Dish", Category: entity.CategoryMain, Price: mustDec(t, "-1.00"),
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)
}

func TestMenuListOrderingAndFilters(t *testing.T) {
	env := newTestEnv(t)

	create := func(name, category, price string, available bool) {
		av := available
		_, err := env.menu.Create(&MenuItemReq{
			Name: name, Category: category, Price: mustDec(t, price), Available: &av,
		})
		require.NoError(t, err)
	}
	create("Tiramisu", entity.CategoryDessert, "7.99", true)
	create("Bruschetta", entity.CategoryAppetizer, "8.99", true)
	create("Caesar Salad", entity.CategoryAppetizer, "9.99", false)

	all, err := env.menu.List(repository.MenuFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// category then name
	assert.Equal(t, "Bruschetta", all[0].Name)
	assert.Equal(t, "Caesar Salad", all[1].Name)
	assert.Equal(t, "Tiramisu", all[2].Name)

	apps, err := env.menu.List(repository.MenuFilter{Category: entity.CategoryAppetizer})
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	available, err := env.menu.Available()
	require.NoError(t, err)
	assert.Len(t, available, 2)

	categories, err := env.menu.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{entity.CategoryAppetizer, entity.CategoryDessert}, categories)
}

func TestMenuUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	item, err := env.menu.Create(&MenuItemReq{
		Name: "Cappuccino", Category: entity.CategoryBeverage, Price: mustDec(t, "4.99"),
	})
	require.NoError(t, err)
	assert.True(t, item.Available, "available defaults to true")

	off := false
	updated, err := env.menu.Update(item.ID, &MenuItemReq{
		Name: "Cappuccino", Category: entity.CategoryBeverage,
		Price: mustDec(t, "5.49"), Available: &off,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(mustDec(t, "5.49")))
	assert.False(t, updated.Available)

	require.NoError(t, env.menu.Delete(item.ID))
	_, err = env.menu.Get(item.ID)
	assert.True(t, apperr.IsNotFound(err), "got %v", err)
}
