// Package account provides the bank card aggregate that carries a customer
// balance. The balance uses exact decimal arithmetic; the adjustment
// primitives are deliberately low level and enforce no floor: the settlement
// engine checks funds before initiating a transfer.
package account

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

	// ErrAmountIsNotPositive is returned when Credit or Debit receives a
	// non-positive amount. Signed adjustments go through AdjustBalance.
	ErrAmountIsNotPositive = errors.New("amount must be greater than 0")
)

// Account represents a bank card identified by its number plus expiry and
// verification code. Cards are shared: several users may register the same
// card, so ownership is kept outside the aggregate.
//
// Account follows these invariants:
//   - The card number must be positive
//   - The expiry month must be within 1..12
//   - Balance arithmetic is exact decimal; no floating point
//   - No negative-balance floor is enforced here (the settlement engine
//     checks funds before debiting)
type Account struct {
	// id is the card number
	id int64

	expMonth int
	expYear  int

	// code is the card verification code
	code int64

	balance kernel.Money

	isConstructed bool
}

// NewAccount creates a new Account with a zero balance.
func NewAccount(id int64, expMonth, expYear int, code int64) (*Account, error) {
	a := &Account{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setExpiry(expMonth, expYear),
		a.setCode(code),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence with its balance.
func RestoreAccount(id int64, expMonth, expYear int, code int64, balance kernel.Money) (*Account, error) {
	a, err := NewAccount(id, expMonth, expYear, code)
	if err != nil {
		return nil, err
	}

	a.balance = balance
	return a, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}

	return nil
}

// IsEqual compares two accounts by card number.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id == other.id
}

// ID returns the card number.
func (a *Account) ID() int64 {
	return a.id
}

// ExpMonth returns the expiry month (1..12).
func (a *Account) ExpMonth() int {
	return a.expMonth
}

// ExpYear returns the expiry year.
func (a *Account) ExpYear() int {
	return a.expYear
}

// Code returns the card verification code.
func (a *Account) Code() int64 {
	return a.code
}

// Balance returns the current balance.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// MatchesIdentity reports whether the supplied attributes match this card.
// A card is only resolvable when number, expiry and verification code all agree.
func (a *Account) MatchesIdentity(expMonth, expYear int, code int64) bool {
	return a.expMonth == expMonth && a.expYear == expYear && a.code == code
}

// AdjustBalance applies a signed delta to the balance.
// This is the low-level ledger primitive: it enforces no floor and is
// trusted only by the settlement engine and the top-up use case.
func (a *Account) AdjustBalance(delta kernel.Money) {
	a.balance = a.balance.Add(delta)
}

// Credit increases the balance by a positive amount.
func (a *Account) Credit(amount kernel.Money) error {
	if amount.IsNegative() || amount.IsZero() {
		return ErrAmountIsNotPositive
	}

	a.AdjustBalance(amount)
	return nil
}

// Debit decreases the balance by a positive amount.
// No funds check happens here; callers verify the balance first.
func (a *Account) Debit(amount kernel.Money) error {
	if amount.IsNegative() || amount.IsZero() {
		return ErrAmountIsNotPositive
	}

	a.AdjustBalance(amount.Neg())
	return nil
}

func (a *Account) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("card number is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	a.id = id
	return nil
}

func (a *Account) setExpiry(expMonth, expYear int) error {
	if expMonth < 1 || expMonth > 12 {
		return errs.NewValueIsOutOfRangeError("expMonth", expMonth, 1, 12)
	}
	if expYear <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("expYear is invalid", fmt.Errorf("%d is not greater than 0", expYear))
	}
	a.expMonth = expMonth
	a.expYear = expYear
	return nil
}

func (a *Account) setCode(code int64) error {
	if code <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("verification code is invalid", fmt.Errorf("%d is not greater than 0", code))
	}
	a.code = code
	return nil
}
