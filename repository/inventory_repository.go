package repository

import (
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

type InventoryRepository struct {
	DB *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{DB: db}
}

func (r *InventoryRepository) List() ([]entity.Inventory, error) {
	var items []entity.Inventory
	err := r.DB.Order("item_name").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) FindByID(id uint) (*entity.Inventory, error) {
	var item entity.Inventory
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) NameTaken(name string, excludeID uint) (bool, error) {
	var cnt int64
	q := r.DB.Model(&entity.Inventory{}).Where("item_name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *InventoryRepository) Create(item *entity.Inventory) error {
	return r.DB.Create(item).Error
}

func (r *InventoryRepository) Save(item *entity.Inventory) error {
	return r.DB.Save(item).Error
}

func (r *InventoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Inventory{}, id).Error
}

// LowStock: quantity at or below the reorder level (boundary included).
func (r *InventoryRepository) LowStock() ([]entity.Inventory, error) {
	var items []entity.Inventory
	err := r.DB.Where("quantity <= reorder_level").Order("item_name").Find(&items).Error
	return items, err
}
