package services_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T, id int64, balanceCents int64) *account.Account {
	t.Helper()

	a, err := account.RestoreAccount(id, 12, 2030, 123, kernel.MoneyFromCents(balanceCents))
	require.NoError(t, err)
	return a
}

func newUnpaidOrder(t *testing.T, priceInCents int64) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"books",
		decimal.NewFromInt(3),
		1,
		2,
		kernel.MoneyFromCents(priceInCents),
	)
	require.NoError(t, err)
	return o
}

func TestSettlementTransfer(t *testing.T) {
	settlement := services.NewSettlement()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("moves the frozen price and marks the order paid", func(t *testing.T) {
		payer := newTestAccount(t, 42, 5500)
		collector := newTestAccount(t, 7, 0)
		ord := newUnpaidOrder(t, 2800)
		userID := kernel.NewUUID()

		receipt, err := settlement.Transfer(payer, collector, ord, userID, now)
		require.NoError(t, err)

		assert.True(t, payer.Balance().IsEqual(kernel.MoneyFromCents(2700)))
		assert.True(t, collector.Balance().IsEqual(kernel.MoneyFromCents(2800)))

		assert.Equal(t, order.Paid, ord.Status())
		require.NotNil(t, ord.PaymentID())
		assert.True(t, ord.PaymentID().IsEqual(receipt.ID()))

		require.NotNil(t, receipt.AccountID())
		assert.Equal(t, payer.ID(), *receipt.AccountID())
		assert.True(t, receipt.OrderID().IsEqual(ord.ID()))
		assert.True(t, receipt.UserID().IsEqual(userID))
		assert.True(t, receipt.PriceInCents().IsEqual(kernel.MoneyFromCents(2800)))
		assert.Equal(t, now, receipt.CreatedAt())
	})

	t.Run("exact balance is sufficient", func(t *testing.T) {
		payer := newTestAccount(t, 42, 2800)
		collector := newTestAccount(t, 7, 0)
		ord := newUnpaidOrder(t, 2800)

		_, err := settlement.Transfer(payer, collector, ord, kernel.NewUUID(), now)
		require.NoError(t, err)
		assert.True(t, payer.Balance().IsZero())
	})

	t.Run("insufficient funds leaves everything untouched", func(t *testing.T) {
		payer := newTestAccount(t, 42, 100)
		collector := newTestAccount(t, 7, 0)
		ord := newUnpaidOrder(t, 1000)

		_, err := settlement.Transfer(payer, collector, ord, kernel.NewUUID(), now)
		require.ErrorIs(t, err, errs.ErrInsufficientFunds)

		assert.True(t, payer.Balance().IsEqual(kernel.MoneyFromCents(100)))
		assert.True(t, collector.Balance().IsZero())
		assert.Equal(t, order.NotPaid, ord.Status())
		assert.Nil(t, ord.PaymentID())
	})

	t.Run("paying twice is rejected", func(t *testing.T) {
		payer := newTestAccount(t, 42, 10000)
		collector := newTestAccount(t, 7, 0)
		ord := newUnpaidOrder(t, 2800)

		_, err := settlement.Transfer(payer, collector, ord, kernel.NewUUID(), now)
		require.NoError(t, err)

		_, err = settlement.Transfer(payer, collector, ord, kernel.NewUUID(), now)
		require.ErrorIs(t, err, errs.ErrInvalidState)

		// only the first transfer moved money
		assert.True(t, payer.Balance().IsEqual(kernel.MoneyFromCents(7200)))
		assert.True(t, collector.Balance().IsEqual(kernel.MoneyFromCents(2800)))
	})

	t.Run("nil payer is rejected", func(t *testing.T) {
		collector := newTestAccount(t, 7, 0)
		ord := newUnpaidOrder(t, 2800)

		_, err := settlement.Transfer(nil, collector, ord, kernel.NewUUID(), now)
		require.ErrorIs(t, err, account.ErrAccountIsNotConstructed)
	})

	t.Run("nil collector is rejected", func(t *testing.T) {
		payer := newTestAccount(t, 42, 10000)
		ord := newUnpaidOrder(t, 2800)

		_, err := settlement.Transfer(payer, nil, ord, kernel.NewUUID(), now)
		require.ErrorIs(t, err, account.ErrAccountIsNotConstructed)
	})

	t.Run("unconstructed user id is rejected", func(t *testing.T) {
		payer := newTestAccount(t, 42, 10000)
		collector := newTestAccount(t, 7, 0)
		ord := newUnpaidOrder(t, 2800)

		_, err := settlement.Transfer(payer, collector, ord, kernel.UUID{}, now)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		assert.Equal(t, order.NotPaid, ord.Status())
		assert.True(t, payer.Balance().IsEqual(kernel.MoneyFromCents(10000)))
	})
}
