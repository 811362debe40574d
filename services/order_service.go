package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	MenuRepo  *repository.MenuRepository
	TableRepo *repository.TableRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	tableRepo *repository.TableRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, MenuRepo: menuRepo, TableRepo: tableRepo}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderReq struct {
	TableID      uint          `json:"table" binding:"required"`
	CustomerName string        `json:"customer_name"`
	Notes        string        `json:"notes"`
	Items        []OrderItemIn `json:"items"`
}

type UpdateOrderReq struct {
	CustomerName *string `json:"customer_name"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
}

// Create opens an order: one item row per input line, prices snapshotted from
// the menu, total derived, and the table seated (is_available=false).
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperr.Validation("order must contain at least one item")
	}

	table, err := s.TableRepo.FindByID(req.TableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("table not found")
		}
		return nil, err
	}

	// validate every line before writing anything
	menuItems := make([]*entity.MenuItem, 0, len(req.Items))
	for _, in := range req.Items {
		m, err := s.MenuRepo.FindByID(in.MenuItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("menu item with id %d does not exist", in.MenuItemID)
			}
			return nil, err
		}
		if !m.Available {
			return nil, apperr.Validation("%s is currently unavailable", m.Name)
		}
		menuItems = append(menuItems, m)
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			TableID:      table.ID,
			CustomerName: req.CustomerName,
			Notes:        req.Notes,
			Status:       entity.OrderPending,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for i, in := range req.Items {
			oi := entity.OrderItem{
				OrderID:             order.ID,
				MenuItemID:          menuItems[i].ID,
				Quantity:            in.Quantity,
				Price:               menuItems[i].Price,
				SpecialInstructions: in.SpecialInstructions,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.recalcTotal(tx, order.ID); err != nil {
			return err
		}

		// seat the table
		if err := s.TableRepo.SetAvailability(tx, table.ID, false); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(orderID)
}

// AddItem appends a line to an open order and recomputes the total.
func (s *OrderService) AddItem(orderID uint, in *OrderItemIn) (*entity.OrderItem, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if entity.OrderStatusTerminal(order.Status) {
		return nil, apperr.InvalidState("cannot add items to served or cancelled orders")
	}

	m, err := s.MenuRepo.FindByID(in.MenuItemID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if m == nil || !m.Available {
		return nil, apperr.NotFound("menu item not found or unavailable")
	}

	oi := entity.OrderItem{
		OrderID:             order.ID,
		MenuItemID:          m.ID,
		Quantity:            in.Quantity,
		Price:               m.Price,
		SpecialInstructions: in.SpecialInstructions,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
			return err
		}
		return s.recalcTotal(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}
	oi.MenuItemName = m.Name
	oi.LineTotal = oi.Subtotal()
	return &oi, nil
}

// RemoveItem deletes a line from an open order and recomputes the total.
func (s *OrderService) RemoveItem(orderID, itemID uint) error {
	order, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	if entity.OrderStatusTerminal(order.Status) {
		return apperr.InvalidState("cannot remove items from served or cancelled orders")
	}

	item, err := s.Repo.GetOrderItem(order.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order item not found")
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteOrderItem(tx, item.ID); err != nil {
			return err
		}
		return s.recalcTotal(tx, order.ID)
	})
}

// UpdateStatus moves an order between lifecycle states. Any of the four
// states is reachable from any other; a terminal state frees the table.
func (s *OrderService) UpdateStatus(orderID uint, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, apperr.Validation("invalid status")
	}
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, order.ID, status); err != nil {
			return err
		}
		if entity.OrderStatusTerminal(status) {
			return s.TableRepo.SetAvailability(tx, order.TableID, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(order.ID)
}

// Update edits the order header. Status changes go through the same terminal
// side effect as UpdateStatus; total_price is never client-settable.
func (s *OrderService) Update(orderID uint, req *UpdateOrderReq) (*entity.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if req.Status != nil && !entity.ValidOrderStatus(*req.Status) {
		return nil, apperr.Validation("invalid status")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if req.CustomerName != nil {
			updates["customer_name"] = *req.CustomerName
		}
		if req.Notes != nil {
			updates["notes"] = *req.Notes
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&entity.Order{}).Where("id = ?", order.ID).
			Updates(updates).Error; err != nil {
			return err
		}
		if req.Status != nil && entity.OrderStatusTerminal(*req.Status) {
			return s.TableRepo.SetAvailability(tx, order.TableID, true)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetOrderWithItems(order.ID)
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithItems(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return o, nil
}

func (s *OrderService) List(f repository.OrderFilter) ([]entity.Order, error) {
	return s.Repo.List(f)
}

func (s *OrderService) Active() ([]entity.Order, error) {
	return s.Repo.Active()
}

func (s *OrderService) Today() ([]entity.Order, error) {
	return s.Repo.List(repository.OrderFilter{
		Date: time.Now().Format(repository.DateLayout),
	})
}

// Delete removes the order with its items and payment.
func (s *OrderService) Delete(orderID uint) error {
	order, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, order.ID)
	})
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) recalcTotal(tx *gorm.DB, orderID uint) error {
	total, err := s.Repo.ItemsTotal(tx, orderID)
	if err != nil {
		return err
	}
	return s.Repo.UpdateTotal(tx, orderID, total)
}
