package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber int  `gorm:"uniqueIndex;not null" json:"table_number"`
	Capacity    int  `gorm:"not null" json:"capacity"`
	IsAvailable bool `json:"is_available"`

	Reservations []Reservation `json:"-"`
	Orders       []Order       `json:"-"`
}
