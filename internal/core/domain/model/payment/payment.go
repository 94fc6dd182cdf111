// Package payment provides the immutable settlement receipt. A payment is
// created exactly once per order, at the moment of successful settlement,
// and never mutated afterwards; it is the audit record of money movement.
package payment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is the receipt of a completed settlement. It references the order
// it settles, the card that paid and the user who requested payment.
//
// The account reference is nullable: when a card is deleted, historical
// payments keep existing with their account reference nulled, preserving
// the audit trail.
type Payment struct {
	id kernel.UUID

	orderID kernel.UUID

	// accountID is the paying card; nil after the card was deleted
	accountID *int64

	userID kernel.UUID

	priceInCents kernel.Money

	createdAt time.Time

	isConstructed bool
}

// NewPayment creates the receipt for a settlement that just completed.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	accountID int64,
	userID kernel.UUID,
	priceInCents kernel.Money,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setUserID(userID),
		p.setPrice(priceInCents),
	); err != nil {
		return nil, err
	}

	if accountID <= 0 {
		return nil, errs.NewValueIsInvalidError("accountID")
	}

	p.accountID = &accountID
	p.createdAt = createdAt
	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
// The account reference may be nil for payments whose card was deleted.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	accountID *int64,
	userID kernel.UUID,
	priceInCents kernel.Money,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setUserID(userID),
		p.setPrice(priceInCents),
	); err != nil {
		return nil, err
	}

	if accountID != nil && *accountID <= 0 {
		return nil, errs.NewValueIsInvalidError("accountID")
	}

	p.accountID = accountID
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the order this payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// AccountID returns the paying card number, or nil if the card was deleted.
func (p *Payment) AccountID() *int64 {
	return p.accountID
}

// UserID returns the identifier of the user who paid.
func (p *Payment) UserID() kernel.UUID {
	return p.userID
}

// PriceInCents returns the amount charged.
func (p *Payment) PriceInCents() kernel.Money {
	return p.priceInCents
}

// CreatedAt returns the settlement timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

func (p *Payment) setPrice(priceInCents kernel.Money) error {
	if priceInCents.IsNegative() {
		return errs.NewValueIsInvalidError("priceInCents")
	}
	p.priceInCents = priceInCents
	return nil
}
