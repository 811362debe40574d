package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash         = "CASH"
	PaymentMethodCard         = "CARD"
	PaymentMethodDigital      = "DIGITAL"
	PaymentMethodUPI          = "UPI"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
)

const (
	PaymentPending   = "PENDING"
	PaymentCompleted = "COMPLETED"
	PaymentFailed    = "FAILED"
	PaymentRefunded  = "REFUNDED"
)

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodDigital,
		PaymentMethodUPI, PaymentMethodBankTransfer:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Payment struct {
	gorm.Model
	// one payment per order
	OrderID uint  `gorm:"uniqueIndex;not null" json:"order"`
	Order   Order `json:"-"`

	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod  string          `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus  string          `gorm:"size:20;not null" json:"payment_status"`
	TransactionID  string          `gorm:"size:100" json:"transaction_id"`
	TipAmount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"tip_amount"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount_amount"`

	// Derived: amount + tip + tax - discount.
	FinalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"final_amount"`

	Notes string `json:"notes"`
}

// CalculateFinalAmount refreshes the derived total. Call after any change to
// amount, tip, tax or discount.
func (p *Payment) CalculateFinalAmount() decimal.Decimal {
	p.FinalAmount = p.Amount.Add(p.TipAmount).Add(p.TaxAmount).Sub(p.DiscountAmount)
	return p.FinalAmount
}
