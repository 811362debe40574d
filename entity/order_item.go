package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menu_item"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`

	// Price is snapshotted from the menu item when the line is added and
	// never follows later menu price changes.
	Price decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`

	SpecialInstructions string `json:"special_instructions"`

	// read-side projections, filled by AfterFind
	MenuItemName string          `gorm:"-" json:"menu_item_name"`
	LineTotal    decimal.Decimal `gorm:"-" json:"subtotal"`
}

func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}

// AfterFind projects the display fields. MenuItemName stays blank unless the
// menu item was preloaded.
func (oi *OrderItem) AfterFind(*gorm.DB) error {
	oi.MenuItemName = oi.MenuItem.Name
	oi.LineTotal = oi.Subtotal()
	return nil
}
