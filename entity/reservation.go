package entity

import (
	"gorm.io/gorm"
)

const (
	ReservationBooked    = "BOOKED"
	ReservationCompleted = "COMPLETED"
	ReservationCancelled = "CANCELLED"
)

func ValidReservationStatus(s string) bool {
	switch s {
	case ReservationBooked, ReservationCompleted, ReservationCancelled:
		return true
	}
	return false
}

// Date is YYYY-MM-DD, Time is HH:MM (24h). Both validated at the service
// layer so the slot uniqueness index compares exact strings.
type Reservation struct {
	gorm.Model
	CustomerName  string `gorm:"size:200;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:254" json:"customer_email"`

	TableID uint  `json:"table"`
	Table   Table `json:"-"`

	Date            string `gorm:"size:10;not null" json:"date"`
	Time            string `gorm:"size:5;not null" json:"time"`
	PartySize       int    `gorm:"not null" json:"party_size"`
	Status          string `gorm:"size:20;not null" json:"status"`
	SpecialRequests string `json:"special_requests"`
}
