package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderPending    = "PENDING"
	OrderInProgress = "IN_PROGRESS"
	OrderServed     = "SERVED"
	OrderCancelled  = "CANCELLED"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderInProgress, OrderServed, OrderCancelled:
		return true
	}
	return false
}

// Terminal states free the order's table.
func OrderStatusTerminal(s string) bool {
	return s == OrderServed || s == OrderCancelled
}

type Order struct {
	gorm.Model
	TableID      uint  `json:"table"`
	Table        Table `json:"-"`
	CustomerName string `gorm:"size:200" json:"customer_name"`

	// Derived: sum(price*quantity) over items. Recomputed on every item
	// mutation, never written by clients.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_price"`

	Status string `gorm:"size:20;not null" json:"status"`
	Notes  string `json:"notes"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"order_items,omitempty"`
	Payment    *Payment    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
