package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CategoryAppetizer = "APPETIZER"
	CategoryMain      = "MAIN"
	CategoryDessert   = "DESSERT"
	CategoryBeverage  = "BEVERAGE"
	CategorySpecial   = "SPECIAL"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage, CategorySpecial:
		return true
	}
	return false
}

type MenuItem struct {
	gorm.Model
	Name        string          `gorm:"size:200;not null" json:"name"`
	Category    string          `gorm:"size:20;not null" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`

	// hidden to keep list payloads small
	OrderItems []OrderItem `json:"-"`
}
