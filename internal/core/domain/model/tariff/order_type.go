package tariff

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrOrderTypeIsNotConstructed is returned when an OrderType was not
// created via NewOrderType.
var ErrOrderTypeIsNotConstructed = errors.New("OrderType must be created via NewOrderType")

// OrderType is a named shipment category with a flat price contribution.
type OrderType struct {
	id           int64
	name         string
	priceInCents kernel.Money

	isConstructed bool
}

// NewOrderType creates an OrderType reference-data entry.
func NewOrderType(id int64, name string, priceInCents kernel.Money) (*OrderType, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order type id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if priceInCents.IsNegative() {
		return nil, errs.NewValueIsInvalidError("priceInCents")
	}

	return &OrderType{
		id:            id,
		name:          name,
		priceInCents:  priceInCents,
		isConstructed: true,
	}, nil
}

// Validate ensures the OrderType was properly constructed.
func (t *OrderType) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrOrderTypeIsNotConstructed
	}
	return nil
}

// ID returns the order type identifier.
func (t *OrderType) ID() int64 {
	return t.id
}

// Name returns the category name.
func (t *OrderType) Name() string {
	return t.name
}

// PriceInCents returns the flat price contribution.
func (t *OrderType) PriceInCents() kernel.Money {
	return t.priceInCents
}
