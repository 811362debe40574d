package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Inventory struct {
	gorm.Model
	ItemName     string          `gorm:"size:200;uniqueIndex;not null" json:"item_name"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	Unit         string          `gorm:"size:50;default:units" json:"unit"`
	ReorderLevel int             `gorm:"not null" json:"reorder_level"`
	CostPerUnit  decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_per_unit"`

	IsLowStock bool `gorm:"-" json:"is_low_stock"`
}

func (i *Inventory) AfterFind(*gorm.DB) error {
	i.IsLowStock = i.Quantity <= i.ReorderLevel
	return nil
}

func (i *Inventory) AfterSave(*gorm.DB) error {
	i.IsLowStock = i.Quantity <= i.ReorderLevel
	return nil
}
