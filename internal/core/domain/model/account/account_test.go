package account_test

import (
	"testing"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(t *testing.T) *account.Account {
	t.Helper()

	a, err := account.NewAccount(4111, 5, 2030, 123)
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("valid account starts with zero balance", func(t *testing.T) {
		a := newTestAccount(t)

		assert.Equal(t, int64(4111), a.ID())
		assert.True(t, a.Balance().IsZero())
	})

	t.Run("non-positive card number", func(t *testing.T) {
		_, err := account.NewAccount(0, 5, 2030, 123)
		require.Error(t, err)
	})

	t.Run("expiry month out of range", func(t *testing.T) {
		_, err := account.NewAccount(4111, 13, 2030, 123)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = account.NewAccount(4111, 0, 2030, 123)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("non-positive verification code", func(t *testing.T) {
		_, err := account.NewAccount(4111, 5, 2030, 0)
		require.Error(t, err)
	})
}

func TestAccount_Validate(t *testing.T) {
	require.NoError(t, newTestAccount(t).Validate())

	var a account.Account
	require.ErrorIs(t, a.Validate(), account.ErrAccountIsNotConstructed)
}

func TestRestoreAccount(t *testing.T) {
	balance, err := kernel.MoneyFromString("55.00")
	require.NoError(t, err)

	a, err := account.RestoreAccount(4111, 5, 2030, 123, balance)

	require.NoError(t, err)
	assert.True(t, balance.IsEqual(a.Balance()))
}

func TestAccount_MatchesIdentity(t *testing.T) {
	a := newTestAccount(t)

	assert.True(t, a.MatchesIdentity(5, 2030, 123))
	assert.False(t, a.MatchesIdentity(6, 2030, 123))
	assert.False(t, a.MatchesIdentity(5, 2031, 123))
	assert.False(t, a.MatchesIdentity(5, 2030, 124))
}

func TestAccount_AdjustBalance(t *testing.T) {
	t.Run("signed round trip restores the balance exactly", func(t *testing.T) {
		a := newTestAccount(t)
		delta, err := kernel.MoneyFromString("0.10")
		require.NoError(t, err)

		a.AdjustBalance(delta)
		a.AdjustBalance(delta.Neg())

		assert.True(t, a.Balance().IsZero())
	})

	t.Run("no floor is enforced", func(t *testing.T) {
		a := newTestAccount(t)

		a.AdjustBalance(kernel.MoneyFromCents(-100))

		assert.True(t, a.Balance().IsNegative())
	})
}

func TestAccount_CreditAndDebit(t *testing.T) {
	t.Run("credit then debit", func(t *testing.T) {
		a := newTestAccount(t)

		require.NoError(t, a.Credit(kernel.MoneyFromCents(5500)))
		require.NoError(t, a.Debit(kernel.MoneyFromCents(2800)))

		assert.True(t, a.Balance().IsEqual(kernel.MoneyFromCents(2700)))
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		a := newTestAccount(t)

		require.ErrorIs(t, a.Credit(kernel.Money{}), account.ErrAmountIsNotPositive)
		require.ErrorIs(t, a.Debit(kernel.MoneyFromCents(-1)), account.ErrAmountIsNotPositive)
		assert.True(t, a.Balance().IsZero())
	})
}
