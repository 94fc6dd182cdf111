package errs_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("accountId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "weight", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: weight", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("weight", cause)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weight (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("expMonth", 13, 1, 12)

		assert.Equal(t, "expMonth", err.ParamName)
		assert.Equal(t, 13, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 12, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 13 is expMonth, min value is 1, max value is 12", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("expMonth", -5, 1, 12, cause)

		assert.Equal(t, "expMonth", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is expMonth, min value is 1, max value is 12 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("login")

		assert.Equal(t, "login", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: login", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("login", cause)

		assert.Equal(t, "login", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: login (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("order", "SHIPPED", "PAID")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "SHIPPED", err.Current)
		assert.Equal(t, "PAID", err.Expected)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state: order is SHIPPED, expected PAID", err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})

	t.Run("NewInvalidStateErrorWithCause", func(t *testing.T) {
		cause := errors.New("stale read")
		err := errs.NewInvalidStateErrorWithCause("order", "ARCHIVED", "RECEIVED", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state: order is ARCHIVED, expected RECEIVED (cause: stale read)",
			err.Error())
	})
}

func TestInsufficientFundsError(t *testing.T) {
	err := errs.NewInsufficientFundsError(int64(42), "1.00", "10.00")

	assert.Equal(t, int64(42), err.AccountID)
	assert.Equal(t, "1.00", err.Balance)
	assert.Equal(t, "10.00", err.Required)
	assert.Equal(t, "insufficient funds: account is: 42, balance is 1.00, required 10.00", err.Error())
	assert.Equal(t, errs.ErrInsufficientFunds, err.Unwrap())
}

func TestConfigurationMissingError(t *testing.T) {
	t.Run("NewConfigurationMissingError", func(t *testing.T) {
		err := errs.NewConfigurationMissingError("collector account")

		assert.Equal(t, "collector account", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "configuration is missing: collector account", err.Error())
		assert.Equal(t, errs.ErrConfigurationMissing, err.Unwrap())
	})

	t.Run("NewConfigurationMissingErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewConfigurationMissingErrorWithCause("collector account", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "configuration is missing: collector account (cause: record not found)", err.Error())
	})
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("card", int64(7))

		assert.Equal(t, "card", err.ParamName)
		assert.Equal(t, int64(7), err.ID)
		assert.Equal(t, "object already exists: 7", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key value")
		err := errs.NewConflictErrorWithCause("card", int64(7), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object already exists: param is: card, ID is: 7 (cause: duplicate key value)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidState)
		require.Error(t, errs.ErrInsufficientFunds)
		require.Error(t, errs.ErrConfigurationMissing)
		require.Error(t, errs.ErrConflict)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state", errs.ErrInvalidState.Error())
		assert.Equal(t, "insufficient funds", errs.ErrInsufficientFunds.Error())
		assert.Equal(t, "configuration is missing", errs.ErrConfigurationMissing.Error())
		assert.Equal(t, "object already exists", errs.ErrConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("weight"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("expMonth", 13, 1, 12), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("login"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidStateError("order", "SHIPPED", "PAID"), errs.ErrInvalidState)
		require.ErrorIs(t, errs.NewInsufficientFundsError(int64(1), "0.00", "5.00"), errs.ErrInsufficientFunds)
		require.ErrorIs(t, errs.NewConfigurationMissingError("collector account"), errs.ErrConfigurationMissing)
		require.ErrorIs(t, errs.NewConflictError("card", int64(7)), errs.ErrConflict)
	})
}
