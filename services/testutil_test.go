package services

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Makanak1/Restaurant-management-system/configs"
	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

type testEnv struct {
	db *gorm.DB

	menu         *MenuService
	tables       *TableService
	orders       *OrderService
	reservations *ReservationService
	payments     *PaymentService
	inventory    *InventoryService
	reports      *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// named in-memory db so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.MenuItem{}, &entity.Table{},
		&entity.Reservation{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Payment{},
		&entity.Inventory{},
	))
	require.NoError(t, configs.EnsureIndexes(db))

	menuRepo := repository.NewMenuRepository(db)
	tableRepo := repository.NewTableRepository(db)
	resRepo := repository.NewReservationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	reportRepo := repository.NewReportRepository(db)

	taxRate, err := decimal.NewFromString("0.08")
	require.NoError(t, err)

	return &testEnv{
		db:           db,
		menu:         NewMenuService(menuRepo),
		tables:       NewTableService(db, tableRepo),
		orders:       NewOrderService(db, orderRepo, menuRepo, tableRepo),
		reservations: NewReservationService(resRepo, tableRepo),
		payments:     NewPaymentService(db, paymentRepo, orderRepo, tableRepo, taxRate),
		inventory:    NewInventoryService(inventoryRepo),
		reports:      NewReportService(reportRepo, inventoryRepo, resRepo),
	}
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func (e *testEnv) seedMenuItem(t *testing.T, name, price string, available bool) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{
		Name:      name,
		Category:  entity.CategoryMain,
		Price:     mustDec(t, price),
		Available: available,
	}
	require.NoError(t, e.db.Create(item).Error)
	return item
}

func (e *testEnv) seedTable(t *testing.T, number, capacity int) *entity.Table {
	t.Helper()
	table := &entity.Table{TableNumber: number, Capacity: capacity, IsAvailable: true}
	require.NoError(t, e.db.Create(table).Error)
	return table
}

func (e *testEnv) reloadTable(t *testing.T, id uint) *entity.Table {
	t.Helper()
	var table entity.Table
	require.NoError(t, e.db.First(&table, id).Error)
	return &table
}

func (e *testEnv) reloadOrder(t *testing.T, id uint) *entity.Order {
	t.Helper()
	var order entity.Order
	require.NoError(t, e.db.First(&order, id).Error)
	return &order
}
