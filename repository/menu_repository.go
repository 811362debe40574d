package repository

import (
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

type MenuFilter struct {
	Category  string
	Available *bool
}

// default menu ordering: category then name
func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}
	var items []entity.MenuItem
	err := q.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) Categories() ([]string, error) {
	var categories []string
	err := r.DB.Model(&entity.MenuItem{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}
