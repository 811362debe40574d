package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

const timeLayout = "15:04"

type ReservationService struct {
	Repo      *repository.ReservationRepository
	TableRepo *repository.TableRepository
}

func NewReservationService(
	repo *repository.ReservationRepository,
	tableRepo *repository.TableRepository,
) *ReservationService {
	return &ReservationService{Repo: repo, TableRepo: tableRepo}
}

type ReservationReq struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerEmail   string `json:"customer_email"`
	TableID         uint   `json:"table" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	PartySize       int    `json:"party_size" binding:"required,min=1"`
	SpecialRequests string `json:"special_requests"`
}

// validate runs the shared create/update checks. excludeID carries the record
// being updated so it never conflicts with itself.
func (s *ReservationService) validate(req *ReservationReq, excludeID uint) (*entity.Table, error) {
	if _, err := time.Parse(repository.DateLayout, req.Date); err != nil {
		return nil, apperr.Validation("date must be in YYYY-MM-DD format")
	}
	if _, err := time.Parse(timeLayout, req.Time); err != nil {
		return nil, apperr.Validation("time must be in HH:MM format")
	}

	table, err := s.TableRepo.FindByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}

	if req.PartySize > table.Capacity {
		return nil, apperr.Validation("party size (%d) exceeds table capacity (%d)",
			req.PartySize, table.Capacity)
	}

	taken, err := s.Repo.SlotTaken(table.ID, req.Date, req.Time, excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Validation("this table is already reserved for the selected date and time")
	}
	return table, nil
}

func (s *ReservationService) Create(req *ReservationReq) (*entity.Reservation, error) {
	table, err := s.validate(req, 0)
	if err != nil {
		return nil, err
	}
	res := entity.Reservation{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		TableID:         table.ID,
		Date:            req.Date,
		Time:            req.Time,
		PartySize:       req.PartySize,
		Status:          entity.ReservationBooked,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.Repo.Create(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ReservationService) Update(id uint, req *ReservationReq) (*entity.Reservation, error) {
	res, err := s.get(id)
	if err != nil {
		return nil, err
	}
	table, err := s.validate(req, res.ID)
	if err != nil {
		return nil, err
	}

	res.CustomerName = req.CustomerName
	res.CustomerPhone = req.CustomerPhone
	res.CustomerEmail = req.CustomerEmail
	res.TableID = table.ID
	res.Date = req.Date
	res.Time = req.Time
	res.PartySize = req.PartySize
	res.SpecialRequests = req.SpecialRequests
	if err := s.Repo.Save(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel releases the slot. Idempotent: cancelling twice is fine.
func (s *ReservationService) Cancel(id uint) (*entity.Reservation, error) {
	return s.setStatus(id, entity.ReservationCancelled)
}

func (s *ReservationService) Complete(id uint) (*entity.Reservation, error) {
	return s.setStatus(id, entity.ReservationCompleted)
}

func (s *ReservationService) setStatus(id uint, status string) (*entity.Reservation, error) {
	res, err := s.get(id)
	if err != nil {
		return nil, err
	}
	res.Status = status
	if err := s.Repo.Save(res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *ReservationService) Get(id uint) (*entity.Reservation, error) {
	return s.get(id)
}

func (s *ReservationService) List(f repository.ReservationFilter) ([]entity.Reservation, error) {
	return s.Repo.List(f)
}

func (s *ReservationService) Today() ([]entity.Reservation, error) {
	return s.Repo.ByDate(time.Now().Format(repository.DateLayout))
}

func (s *ReservationService) Upcoming() ([]entity.Reservation, error) {
	return s.Repo.Upcoming(time.Now().Format(repository.DateLayout))
}

func (s *ReservationService) Delete(id uint) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *ReservationService) get(id uint) (*entity.Reservation, error) {
	res, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("reservation not found")
		}
		return nil, err
	}
	return res, nil
}
