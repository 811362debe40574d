package repository

import (
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

type ReservationFilter struct {
	Status        string
	Date          string
	CustomerPhone string
}

// default ordering: most recent slot first
func (r *ReservationRepository) List(f ReservationFilter) ([]entity.Reservation, error) {
	q := r.DB.Model(&entity.Reservation{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.CustomerPhone != "" {
		q = q.Where("customer_phone = ?", f.CustomerPhone)
	}
	var out []entity.Reservation
	err := q.Order("date DESC, time DESC").Find(&out).Error
	return out, err
}

func (r *ReservationRepository) FindByID(id uint) (*entity.Reservation, error) {
	var res entity.Reservation
	if err := r.DB.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) Create(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) Save(res *entity.Reservation) error {
	return r.DB.Save(res).Error
}

func (r *ReservationRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Reservation{}, id).Error
}

// SlotTaken reports whether a BOOKED reservation other than excludeID already
// holds (table, date, time).
func (r *ReservationRepository) SlotTaken(tableID uint, date, t string, excludeID uint) (bool, error) {
	q := r.DB.Model(&entity.Reservation{}).
		Where("table_id = ? AND date = ? AND time = ? AND status = ?",
			tableID, date, t, entity.ReservationBooked)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *ReservationRepository) ByDate(date string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("date = ?", date).
		Order("time").Find(&out).Error
	return out, err
}

// Upcoming lists BOOKED reservations from a date onwards, soonest first.
func (r *ReservationRepository) Upcoming(fromDate string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("date >= ? AND status = ?", fromDate, entity.ReservationBooked).
		Order("date, time").Find(&out).Error
	return out, err
}

func (r *ReservationRepository) InDateRange(start, end string) ([]entity.Reservation, error) {
	var out []entity.Reservation
	err := r.DB.Where("date BETWEEN ? AND ?", start, end).Find(&out).Error
	return out, err
}
