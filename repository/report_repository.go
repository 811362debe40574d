package repository

import (
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

// ReportRepository serves the read-side aggregations. Monetary sums are done
// in Go over decimal values; SQL SUM would round-trip through floats.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) OrdersByDate(date string) ([]entity.Order, error) {
	start, next, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	var out []entity.Order
	err = r.DB.Where("created_at >= ? AND created_at < ?", start, next).Find(&out).Error
	return out, err
}

func (r *ReportRepository) CompletedPaymentsByDate(date string) ([]entity.Payment, error) {
	start, next, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	var out []entity.Payment
	err = r.DB.Where("payment_status = ? AND created_at >= ? AND created_at < ?",
		entity.PaymentCompleted, start, next).Find(&out).Error
	return out, err
}

// OrderItemsByOrderDate loads the order lines (with their menu items) of all
// orders created on a date.
func (r *ReportRepository) OrderItemsByOrderDate(date string) ([]entity.OrderItem, error) {
	start, next, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	var items []entity.OrderItem
	err = r.DB.Preload("MenuItem").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.created_at >= ? AND orders.created_at < ? AND orders.deleted_at IS NULL",
			start, next).
		Find(&items).Error
	return items, err
}
