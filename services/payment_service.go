package services

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
	"github.com/Makanak1/Restaurant-management-system/repository"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	TableRepo *repository.TableRepository

	// TaxRate comes from configuration, applied to order totals on the
	// derived-tax creation path.
	TaxRate decimal.Decimal
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	taxRate decimal.Decimal,
) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo,
		TableRepo: tableRepo, TaxRate: taxRate}
}

type CreatePaymentReq struct {
	OrderID        uint            `json:"order" binding:"required"`
	PaymentMethod  string          `json:"payment_method" binding:"required"`
	TipAmount      decimal.Decimal `json:"tip_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Notes          string          `json:"notes"`
}

type UpdatePaymentReq struct {
	Amount         *decimal.Decimal `json:"amount"`
	TipAmount      *decimal.Decimal `json:"tip_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	PaymentMethod  *string          `json:"payment_method"`
	Notes          *string          `json:"notes"`
}

// Create opens a PENDING payment for an order: amount taken from the order
// total, tax derived from the configured rate, final amount computed.
func (s *PaymentService) Create(req *CreatePaymentReq) (*entity.Payment, error) {
	if !entity.ValidPaymentMethod(req.PaymentMethod) {
		return nil, apperr.Validation("invalid payment method")
	}
	if req.TipAmount.IsNegative() || req.DiscountAmount.IsNegative() {
		return nil, apperr.Validation("tip and discount amounts cannot be negative")
	}

	order, err := s.OrderRepo.GetOrder(req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	exists, err := s.Repo.ExistsForOrder(order.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("this order already has a payment")
	}
	if order.Status == entity.OrderCancelled {
		return nil, apperr.InvalidState("cannot create payment for cancelled order")
	}

	p := entity.Payment{
		OrderID:        order.ID,
		Amount:         order.TotalPrice,
		PaymentMethod:  req.PaymentMethod,
		PaymentStatus:  entity.PaymentPending,
		TipAmount:      req.TipAmount,
		TaxAmount:      order.TotalPrice.Mul(s.TaxRate).Round(2),
		DiscountAmount: req.DiscountAmount,
		Notes:          req.Notes,
	}
	p.CalculateFinalAmount()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, &p)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update edits the adjustable fields of a payment. A client-supplied amount
// must match the order total exactly; the final amount is recomputed after
// any change to its inputs.
func (s *PaymentService) Update(id uint, req *UpdatePaymentReq) (*entity.Payment, error) {
	p, err := s.get(id)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		order, err := s.OrderRepo.GetOrder(p.OrderID)
		if err != nil {
			return nil, err
		}
		if !req.Amount.Equal(order.TotalPrice) {
			return nil, apperr.Validation("payment amount (%s) must match order total (%s)",
				req.Amount.StringFixed(2), order.TotalPrice.StringFixed(2))
		}
		p.Amount = *req.Amount
	}
	if req.TipAmount != nil {
		if req.TipAmount.IsNegative() {
			return nil, apperr.Validation("tip amount cannot be negative")
		}
		p.TipAmount = *req.TipAmount
	}
	if req.DiscountAmount != nil {
		if req.DiscountAmount.IsNegative() {
			return nil, apperr.Validation("discount amount cannot be negative")
		}
		p.DiscountAmount = *req.DiscountAmount
	}
	if req.PaymentMethod != nil {
		if !entity.ValidPaymentMethod(*req.PaymentMethod) {
			return nil, apperr.Validation("invalid payment method")
		}
		p.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	p.CalculateFinalAmount()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Save(tx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Complete settles the payment. The order is served and its table freed in
// the same transaction, so the three writes land together or not at all.
func (s *PaymentService) Complete(id uint, transactionID string) (*entity.Payment, error) {
	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if p.PaymentStatus == entity.PaymentCompleted {
		return nil, apperr.InvalidState("payment already completed")
	}

	order, err := s.OrderRepo.GetOrder(p.OrderID)
	if err != nil {
		return nil, err
	}

	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		p.PaymentStatus = entity.PaymentCompleted
		p.TransactionID = transactionID
		if err := s.Repo.Save(tx, p); err != nil {
			return err
		}
		if err := s.OrderRepo.UpdateStatus(tx, order.ID, entity.OrderServed); err != nil {
			return err
		}
		return s.TableRepo.SetAvailability(tx, order.TableID, true)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Refund reverses a completed payment: the order is cancelled and the table
// released.
func (s *PaymentService) Refund(id uint) (*entity.Payment, error) {
	p, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if p.PaymentStatus != entity.PaymentCompleted {
		return nil, apperr.InvalidState("can only refund completed payments")
	}

	order, err := s.OrderRepo.GetOrder(p.OrderID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		p.PaymentStatus = entity.PaymentRefunded
		if err := s.Repo.Save(tx, p); err != nil {
			return err
		}
		if err := s.OrderRepo.UpdateStatus(tx, order.ID, entity.OrderCancelled); err != nil {
			return err
		}
		return s.TableRepo.SetAvailability(tx, order.TableID, true)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PaymentService) Get(id uint) (*entity.Payment, error) {
	return s.get(id)
}

func (s *PaymentService) List(f repository.PaymentFilter) ([]entity.Payment, error) {
	return s.Repo.List(f)
}

func (s *PaymentService) Today() ([]entity.Payment, error) {
	return s.Repo.List(repository.PaymentFilter{
		Date: time.Now().Format(repository.DateLayout),
	})
}

func (s *PaymentService) Delete(id uint) error {
	if _, err := s.get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

type MethodSummary struct {
	PaymentMethod string          `json:"payment_method"`
	Count         int             `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

// Summary groups a date's COMPLETED payments by method.
func (s *PaymentService) Summary(date string) ([]MethodSummary, error) {
	if date == "" {
		date = time.Now().Format(repository.DateLayout)
	}
	payments, err := s.Repo.CompletedByDate(date)
	if err != nil {
		return nil, err
	}

	byMethod := map[string]*MethodSummary{}
	for i := range payments {
		ms, ok := byMethod[payments[i].PaymentMethod]
		if !ok {
			ms = &MethodSummary{PaymentMethod: payments[i].PaymentMethod, Total: decimal.Zero}
			byMethod[payments[i].PaymentMethod] = ms
		}
		ms.Count++
		ms.Total = ms.Total.Add(payments[i].FinalAmount)
	}

	out := make([]MethodSummary, 0, len(byMethod))
	for _, ms := range byMethod {
		out = append(out, *ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentMethod < out[j].PaymentMethod })
	return out, nil
}

func (s *PaymentService) get(id uint) (*entity.Payment, error) {
	p, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("payment not found")
		}
		return nil, err
	}
	return p, nil
}
