package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

type InventoryService struct {
	Repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

type InventoryReq struct {
	ItemName     string          `json:"item_name" binding:"required"`
	Quantity     int             `json:"quantity"`
	Unit         string          `json:"unit"`
	ReorderLevel int             `json:"reorder_level"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
}

func (s *InventoryService) validate(req *InventoryReq) error {
	if req.Quantity < 0 {
		return apperr.Validation("quantity cannot be negative")
	}
	if req.ReorderLevel < 0 {
		return apperr.Validation("reorder level cannot be negative")
	}
	if req.CostPerUnit.IsNegative() {
		return apperr.Validation("cost per unit cannot be negative")
	}
	return nil
}

func (s *InventoryService) Create(req *InventoryReq) (*entity.Inventory, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	taken, err := s.Repo.NameTaken(req.ItemName, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("inventory item %q already exists", req.ItemName)
	}
	unit := req.Unit
	if unit == "" {
		unit = "units"
	}
	item := entity.Inventory{
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Unit:         unit,
		ReorderLevel: req.ReorderLevel,
		CostPerUnit:  req.CostPerUnit,
	}
	if err := s.Repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *InventoryService) Update(id uint, req *InventoryReq) (*entity.Inventory, error) {
	item, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}
	taken, err := s.Repo.NameTaken(req.ItemName, item.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict("inventory item %q already exists", req.ItemName)
	}
	item.ItemName = req.ItemName
	item.Quantity = req.Quantity
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	item.ReorderLevel = req.ReorderLevel
	item.CostPerUnit = req.CostPerUnit
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateQuantity applies a signed delta; the stock level can never go below
// zero, and a rejected delta leaves the row untouched.
func (s *InventoryService) UpdateQuantity(id uint, change int) (*entity.Inventory, error) {
	item, err := s.get(id)
	if err != nil {
		return nil, err
	}
	newQuantity := item.Quantity + change
	if newQuantity < 0 {
		return nil, apperr.Validation("insufficient inventory")
	}
	item.Quantity = newQuantity
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Restock(id uint, quantity int) (*entity.Inventory, error) {
	if quantity <= 0 {
		return nil, apperr.Validation("quantity must be positive")
	}
	item, err := s.get(id)
	if err != nil {
		return nil, err
	}
	item.Quantity += quantity
	if err := s.Repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Get(id uint) (*entity.Inventory, error) {
	return s.get(id)
}

func (s *InventoryService) List() ([]entity.Inventory, error) {
	return s.Repo.List()
}

func (s *InventoryService) LowStock() ([]entity.Inventory, error) {
	return s.Repo.LowStock()
}

func (s *InventoryService) Delete(id uint) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *InventoryService) get(id uint) (*entity.Inventory, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("inventory item not found")
		}
		return nil, err
	}
	return item, nil
}
