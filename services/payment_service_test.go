package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makanak1/Restaurant-management-system/entity"
	"github.com/Makanak1/Restaurant-management-system/pkg/apperr"
)

// openOrder seeds a table and a 20.00 order on it.
func openOrder(t *testing.T, env *testEnv, tableNumber int) *entity.Order {
	t.Helper()
	dish := env.seedMenuItem(t, "Ten Dollar Dish", "10.00", true)
	table := env.seedTable(t, tableNumber, 4)
	order, err := env.orders.Create(&CreateOrderReq{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: dish.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	return order
}

func TestCreatePaymentDerivesTaxAndFinal(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 1)

	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID:       order.ID,
		PaymentMethod: entity.PaymentMethodCard,
		TipAmount:     mustDec(t, "3.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentPending, p.PaymentStatus)
	assert.True(t, p.Amount.Equal(mustDec(t, "20.00")), "amount = %s", p.Amount)
	assert.True(t, p.TaxAmount.Equal(mustDec(t, "1.60")), "tax = %s", p.TaxAmount)
	// 20.00 + 3.00 + 1.60 - 0
	assert.True(t, p.FinalAmount.Equal(mustDec(t, "24.60")), "final = %s", p.FinalAmount)
}

func TestCreatePaymentGuards(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 2)

	_, err := env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: "IOU",
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	_, err = env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodCash,
		TipAmount: mustDec(t, "-1.00"),
	})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	_, err = env.payments.Create(&CreatePaymentReq{
		OrderID: 9999, PaymentMethod: entity.PaymentMethodCash,
	})
	assert.True(t, apperr.IsNotFound(err), "got %v", err)

	// duplicate payment
	_, err = env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodCash,
	})
	assert.True(t, apperr.IsConflict(err), "got %v", err)
}

func TestCreatePaymentForCancelledOrder(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 3)
	_, err := env.orders.UpdateStatus(order.ID, entity.OrderCancelled)
	require.NoError(t, err)

	_, err = env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodCash,
	})
	assert.True(t, apperr.IsInvalidState(err), "got %v", err)
}

func TestCompletePaymentSideEffects(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 4)

	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodUPI,
	})
	require.NoError(t, err)
	require.False(t, env.reloadTable(t, order.TableID).IsAvailable)

	completed, err := env.payments.Complete(p.ID, "TXN-42")
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentCompleted, completed.PaymentStatus)
	assert.Equal(t, "TXN-42", completed.TransactionID)
	// order served and table freed together
	assert.Equal(t, entity.OrderServed, env.reloadOrder(t, order.ID).Status)
	assert.True(t, env.reloadTable(t, order.TableID).IsAvailable)
}

func TestCompletePaymentGeneratesTransactionID(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 5)

	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodDigital,
	})
	require.NoError(t, err)

	completed, err := env.payments.Complete(p.ID, "")
	require.NoError(t, err)
	assert.NotEmpty(t, completed.TransactionID)
}

func TestCompletePaymentTwice(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 6)

	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)
	_, err = env.payments.Complete(p.ID, "TXN-1")
	require.NoError(t, err)

	_, err = env.payments.Complete(p.ID, "TXN-2")
	assert.True(t, apperr.IsInvalidState(err), "got %v", err)

	reloaded, err := env.payments.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "TXN-1", reloaded.TransactionID, "state must be unchanged")
}

func TestRefundPayment(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 7)

	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodBankTransfer,
	})
	require.NoError(t, err)

	// refund before completion is rejected
	_, err = env.payments.Refund(p.ID)
	assert.True(t, apperr.IsInvalidState(err), "got %v", err)

	_, err = env.payments.Complete(p.ID, "")
	require.NoError(t, err)

	refunded, err := env.payments.Refund(p.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentRefunded, refunded.PaymentStatus)
	assert.Equal(t, entity.OrderCancelled, env.reloadOrder(t, order.ID).Status)
	assert.True(t, env.reloadTable(t, order.TableID).IsAvailable)
}

func TestUpdatePaymentAmountMustMatchOrderTotal(t *testing.T) {
	env := newTestEnv(t)
	order := openOrder(t, env, 8)

	p, err := env.payments.Create(&CreatePaymentReq{
		OrderID: order.ID, PaymentMethod: entity.PaymentMethodCash,
	})
	require.NoError(t, err)

	wrong := mustDec(t, "19.99")
	_, err = env.payments.Update(p.ID, &UpdatePaymentReq{Amount: &wrong})
	assert.True(t, apperr.IsValidation(err), "got %v", err)

	right := mustDec(t, "20.00")
	tip := mustDec(t, "2.00")
	updated, err := env.payments.Update(p.ID, &UpdatePaymentReq{Amount: &right, TipAmount: &tip})
	require.NoError(t, err)
	// 20.00 + 2.00 + 1.60 - 0
	assert.True(t, updated.FinalAmount.Equal(mustDec(t, "23.60")), "final = %s", updated.FinalAmount)
}

func TestPaymentSummaryByMethod(t *testing.T) {
	env := newTestEnv(t)

	for i, method := range []string{
		entity.PaymentMethodCash, entity.PaymentMethodCash, entity.PaymentMethodCard,
	} {
		order := openOrder(t, env, 20+i)
		p, err := env.payments.Create(&CreatePaymentReq{OrderID: order.ID, PaymentMethod: method})
		require.NoError(t, err)
		_, err = env.payments.Complete(p.ID, "")
		require.NoError(t, err)
	}
	// a pending payment must not show up
	order := openOrder(t, env, 30)
	_, err := env.payments.Create(&CreatePaymentReq{OrderID: order.ID, PaymentMethod: entity.PaymentMethodCard})
	require.NoError(t, err)

	summary, err := env.payments.Summary("")
	require.NoError(t, err)
	require.Len(t, summary, 2)

	// sorted by method name: CARD then CASH
	assert.Equal(t, entity.PaymentMethodCard, summary[0].PaymentMethod)
	assert.Equal(t, 1, summary[0].Count)
	assert.True(t, summary[0].Total.Equal(mustDec(t, "21.60")))

	assert.Equal(t, entity.PaymentMethodCash, summary[1].PaymentMethod)
	assert.Equal(t, 2, summary[1].Count)
	assert.True(t, summary[1].Total.Equal(mustDec(t, "43.20")))
}
