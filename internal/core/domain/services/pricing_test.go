package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDestination(t *testing.T, priceInCents int64) *tariff.Destination {
	t.Helper()

	d, err := tariff.NewDestination(1, "Moscow", "Kazan", 3, kernel.MoneyFromCents(priceInCents))
	require.NoError(t, err)
	return d
}

func newTestOrderType(t *testing.T, priceInCents int64) *tariff.OrderType {
	t.Helper()

	ot, err := tariff.NewOrderType(1, "usual", kernel.MoneyFromCents(priceInCents))
	require.NoError(t, err)
	return ot
}

func TestPriceCalculatorCalculate(t *testing.T) {
	calculator := services.NewPriceCalculator(
		kernel.MoneyFromCents(500),
		decimal.NewFromInt(100),
	)

	t.Run("sums tariffs, weighted part and base price", func(t *testing.T) {
		destination := newTestDestination(t, 1000)
		orderType := newTestOrderType(t, 1000)

		// 1000 + 1000 + 3*100 + 500 = 2800 cents
		price, err := calculator.Calculate(destination, orderType, decimal.NewFromInt(3))
		require.NoError(t, err)
		assert.True(t, price.IsEqual(kernel.MoneyFromCents(2800)))
	})

	t.Run("fractional weight keeps exact arithmetic", func(t *testing.T) {
		destination := newTestDestination(t, 1000)
		orderType := newTestOrderType(t, 1000)

		// 1000 + 1000 + 2.5*100 + 500 = 2750 cents
		price, err := calculator.Calculate(destination, orderType, decimal.RequireFromString("2.5"))
		require.NoError(t, err)
		assert.True(t, price.IsEqual(kernel.MoneyFromCents(2750)))
	})

	t.Run("same inputs give same price", func(t *testing.T) {
		destination := newTestDestination(t, 1500)
		orderType := newTestOrderType(t, 700)

		first, err := calculator.Calculate(destination, orderType, decimal.NewFromInt(7))
		require.NoError(t, err)
		second, err := calculator.Calculate(destination, orderType, decimal.NewFromInt(7))
		require.NoError(t, err)
		assert.True(t, first.IsEqual(second))
	})

	t.Run("zero weight is rejected", func(t *testing.T) {
		destination := newTestDestination(t, 1000)
		orderType := newTestOrderType(t, 1000)

		_, err := calculator.Calculate(destination, orderType, decimal.Zero)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative weight is rejected", func(t *testing.T) {
		destination := newTestDestination(t, 1000)
		orderType := newTestOrderType(t, 1000)

		_, err := calculator.Calculate(destination, orderType, decimal.NewFromInt(-1))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("nil destination is rejected", func(t *testing.T) {
		orderType := newTestOrderType(t, 1000)

		_, err := calculator.Calculate(nil, orderType, decimal.NewFromInt(3))
		require.Error(t, err)
	})

	t.Run("nil order type is rejected", func(t *testing.T) {
		destination := newTestDestination(t, 1000)

		_, err := calculator.Calculate(destination, nil, decimal.NewFromInt(3))
		require.Error(t, err)
	})
}
