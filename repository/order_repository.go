package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderWithItems(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("OrderItems.MenuItem").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderFilter struct {
	Status  string
	TableID uint
	Date    string
}

// default ordering: newest first
func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{}).Preload("OrderItems.MenuItem")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.TableID != 0 {
		q = q.Where("table_id = ?", f.TableID)
	}
	if f.Date != "" {
		start, next, err := dayRange(f.Date)
		if err != nil {
			return nil, err
		}
		q = q.Where("created_at >= ? AND created_at < ?", start, next)
	}
	var out []entity.Order
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) Active() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems.MenuItem").
		Where("status IN ?", []string{entity.OrderPending, entity.OrderInProgress}).
		Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("status", status).Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error
}

func (r *OrderRepository) Save(o *entity.Order) error {
	return r.DB.Save(o).Error
}

// DeleteOrder removes an order together with its items and payment.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, id uint) error {
	if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	if err := tx.Where("order_id = ?", id).Delete(&entity.Payment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, id).Error
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *OrderRepository) GetOrderItem(orderID, itemID uint) (*entity.OrderItem, error) {
	var item entity.OrderItem
	if err := r.DB.Where("id = ? AND order_id = ?", itemID, orderID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *OrderRepository) DeleteOrderItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.OrderItem{}, itemID).Error
}

// ItemsTotal sums price*quantity over an order's current items inside the
// caller's transaction, so the recompute sees its own writes.
func (r *OrderRepository) ItemsTotal(tx *gorm.DB, orderID uint) (decimal.Decimal, error) {
	var items []entity.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total, nil
}
