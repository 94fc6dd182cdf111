package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object that represents a currency amount in cents.
// It wraps github.com/shopspring/decimal to guarantee exact decimal
// arithmetic: balances and prices are money, and binary floating point
// must never touch them.
//
// Money is immutable; every operation returns a new value. The zero value
// is a valid amount of zero. Negative amounts are permitted because Money
// is also used for signed balance deltas.
//
// Example usage:
//
//	price := kernel.MoneyFromCents(2800)
//	balance := kernel.MoneyFromCents(5500)
//	rest := balance.Sub(price) // 2700 cents
type Money struct {
	amount decimal.Decimal
}

// MoneyFromString parses a Money value from its decimal string
// representation. Returns an error if the string is not a valid decimal
// number.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%q is not a decimal amount: %w", s, err))
	}
	return Money{amount: d}, nil
}

// MoneyFromCents creates a Money value from a whole number of cents.
func MoneyFromCents(cents int64) Money {
	return Money{amount: decimal.NewFromInt(cents)}
}

// MoneyFromDecimal wraps an existing decimal value.
// Used when reconstructing amounts from persistence.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Mul returns the amount scaled by the given decimal coefficient.
func (m Money) Mul(coefficient decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(coefficient)}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares two amounts for exact equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
