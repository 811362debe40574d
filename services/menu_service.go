package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

type MenuItemReq struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Available   *bool           `json:"available"`
}

func (s *MenuService) validate(req *MenuItemReq) error {
	if !entity.ValidCategory(req.Category) {
		return apperr.Validation("invalid category")
	}
	if !req.Price.IsPositive() {
		return apperr.Validation("price must be greater than zero")
	}
	return nil
}

func (s *MenuService) Create(req *MenuItemReq) (*entity.MenuItem, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}
	item := entity.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Available:   available,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Update(id uint, req *MenuItemReq) (*entity.MenuItem, error) {
	item, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	item.Name = req.Name
	item.Category = req.Category
	item.Price = req.Price
	item.Description = req.Description
	if req.Available != nil {
		item.Available = *req.Available
	}
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.get(id)
}

func (s *MenuService) List(f repository.MenuFilter) ([]entity.MenuItem, error) {
	return s.Repo.List(f)
}

func (s *MenuService) Available() ([]entity.MenuItem, error) {
	available := true
	return s.Repo.List(repository.MenuFilter{Available: &available})
}

func (s *MenuService) Categories() ([]string, error) {
	return s.Repo.Categories()
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *MenuService) get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	return item, nil
}
