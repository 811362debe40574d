package repository

import (
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

type PaymentFilter struct {
	Status string
	Method string
	Date   string
}

// default ordering: newest first
func (r *PaymentRepository) List(f PaymentFilter) ([]entity.Payment, error) {
	q := r.DB.Model(&entity.Payment{})
	if f.Status != "" {
		q = q.Where("payment_status = ?", f.Status)
	}
	if f.Method != "" {
		q = q.Where("payment_method = ?", f.Method)
	}
	if f.Date != "" {
		start, next, err := dayRange(f.Date)
		if err != nil {
			return nil, err
		}
		q = q.Where("created_at >= ? AND created_at < ?", start, next)
	}
	var out []entity.Payment
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) FindByID(id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ExistsForOrder(orderID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Payment{}).
		Where("order_id = ?", orderID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) Save(tx *gorm.DB, p *entity.Payment) error {
	return tx.Save(p).Error
}

func (r *PaymentRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Payment{}, id).Error
}

// CompletedByDate lists COMPLETED payments created on a date, for reporting
// and the per-method summary.
func (r *PaymentRepository) CompletedByDate(date string) ([]entity.Payment, error) {
	start, next, err := dayRange(date)
	if err != nil {
		return nil, err
	}
	var out []entity.Payment
	err = r.DB.Where("payment_status = ? AND created_at >= ? AND created_at < ?",
		entity.PaymentCompleted, start, next).Find(&out).Error
	return out, err
}
