package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

type TableReq struct {
	TableNumber int   `json:"table_number" binding:"required,min=1"`
	Capacity    int   `json:"capacity" binding:"required,min=1"`
	IsAvailable *bool `json:"is_available"`
}

func (s *TableService) Create(req *TableReq) (*entity.Table, error) {
	taken, err := s.Repo.NumberTaken(req.TableNumber, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("table number %d already exists", req.TableNumber)
	}
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	t := entity.Table{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		IsAvailable: available,
	}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TableService) Update(id uint, req *TableReq) (*entity.Table, error) {
	t, err := s.get(id)
	if err != nil {
		return nil, err
	}
	taken, err := s.Repo.NumberTaken(req.TableNumber, t.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("table number %d already exists", req.TableNumber)
	}
	t.TableNumber = req.TableNumber
	t.Capacity = req.Capacity
	if req.IsAvailable != nil {
		t.IsAvailable = *req.IsAvailable
	}
	if err := s.Repo.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TableService) Get(id uint) (*entity.Table, error) {
	return s.get(id)
}

func (s *TableService) List() ([]entity.Table, error) {
	return s.Repo.List()
}

func (s *TableService) MarkAvailable(id uint) (*entity.Table, error) {
	return s.setAvailability(id, true)
}

func (s *TableService) MarkUnavailable(id uint) (*entity.Table, error) {
	return s.setAvailability(id, false)
}

func (s *TableService) setAvailability(id uint, available bool) (*entity.Table, error) {
	t, err := s.get(id)
	if err != nil {
		return nil, err
	}
	t.IsAvailable = available
	if err := s.Repo.Save(t); err != nil {
		return nil, err
	}
	return t, nil
}

// CurrentOrderInfo is attached to occupied tables in availability views.
type CurrentOrderInfo struct {
	OrderID uint            `json:"order_id"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}

type TableAvailability struct {
	ID           uint              `json:"id"`
	TableNumber  int               `json:"table_number"`
	Capacity     int               `json:"capacity"`
	IsAvailable  bool              `json:"is_available"`
	CurrentOrder *CurrentOrderInfo `json:"current_order"`
}

func (s *TableService) Available() ([]TableAvailability, error) {
	tables, err := s.Repo.Available()
	if err != nil {
		return nil, err
	}
	return s.withCurrentOrders(tables)
}

func (s *TableService) ByMinCapacity(min int) ([]TableAvailability, error) {
	if min < 1 {
		min = 1
	}
	tables, err := s.Repo.ByMinCapacity(min)
	if err != nil {
		return nil, err
	}
	return s.withCurrentOrders(tables)
}

func (s *TableService) withCurrentOrders(tables []entity.Table) ([]TableAvailability, error) {
	out := make([]TableAvailability, 0, len(tables))
	for i := range tables {
		row := TableAvailability{
			ID:          tables[i].ID,
			TableNumber: tables[i].TableNumber,
			Capacity:    tables[i].Capacity,
			IsAvailable: tables[i].IsAvailable,
		}
		if !tables[i].IsAvailable {
			o, err := s.Repo.CurrentOrder(tables[i].ID)
			if err != nil {
				return nil, err
			}
			if o != nil {
				row.CurrentOrder = &CurrentOrderInfo{
					OrderID: o.ID,
					Status:  o.Status,
					Total:   o.TotalPrice,
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *TableService) Delete(id uint) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *TableService) get(id uint) (*entity.Table, error) {
	t, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}
	return t, nil
}
