package repository

import (
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) List() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Order("table_number").Find(&tables).Error
	return tables, err
}

func (r *TableRepository) FindByID(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// NumberTaken reports whether another table already uses table_number.
func (r *TableRepository) NumberTaken(number int, excludeID uint) (bool, error) {
	var cnt int64
	q := r.DB.Model(&entity.Table{}).Where("table_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Save(t *entity.Table) error {
	return r.DB.Save(t).Error
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Table{}, id).Error
}

func (r *TableRepository) Available() ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("is_available = ?", true).Order("table_number").Find(&tables).Error
	return tables, err
}

// ByMinCapacity lists every table that can seat the party, occupied or not;
// callers annotate occupied ones with their active order.
func (r *TableRepository) ByMinCapacity(min int) ([]entity.Table, error) {
	var tables []entity.Table
	err := r.DB.Where("capacity >= ?", min).
		Order("table_number").Find(&tables).Error
	return tables, err
}

// CurrentOrder returns the active order seated at a table, if any.
func (r *TableRepository) CurrentOrder(tableID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("table_id = ? AND status IN ?", tableID,
		[]string{entity.OrderPending, entity.OrderInProgress}).
		Order("created_at DESC").First(&o).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *TableRepository) SetAvailability(tx *gorm.DB, id uint, available bool) error {
	return tx.Model(&entity.Table{}).Where("id = ?", id).
		Update("is_available", available).Error
}
