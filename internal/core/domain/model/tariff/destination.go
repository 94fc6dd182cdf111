// Package tariff holds the read-only reference data pricing is derived from:
// destinations (city pair, transit time, distance-based price contribution)
// and order types (named category with a flat price contribution). The core
// never mutates tariff data.
package tariff

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrDestinationIsNotConstructed is returned when a Destination was not
// created via NewDestination.
var ErrDestinationIsNotConstructed = errors.New("Destination must be created via NewDestination")

// Destination is a city-from/city-to pair with its transit time and
// per-shipment price contribution.
type Destination struct {
	id            int64
	cityFrom      string
	cityTo        string
	daysToDeliver int64
	priceInCents  kernel.Money

	isConstructed bool
}

// NewDestination creates a Destination reference-data entry.
func NewDestination(id int64, cityFrom, cityTo string, daysToDeliver int64, priceInCents kernel.Money) (*Destination, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("destination id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	if cityFrom == "" {
		return nil, errs.NewValueIsRequiredError("cityFrom")
	}
	if cityTo == "" {
		return nil, errs.NewValueIsRequiredError("cityTo")
	}
	if daysToDeliver <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("daysToDeliver is invalid", fmt.Errorf("%d is not greater than 0", daysToDeliver))
	}
	if priceInCents.IsNegative() {
		return nil, errs.NewValueIsInvalidError("priceInCents")
	}

	return &Destination{
		id:            id,
		cityFrom:      cityFrom,
		cityTo:        cityTo,
		daysToDeliver: daysToDeliver,
		priceInCents:  priceInCents,
		isConstructed: true,
	}, nil
}

// Validate ensures the Destination was properly constructed.
func (d *Destination) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDestinationIsNotConstructed
	}
	return nil
}

// ID returns the destination identifier.
func (d *Destination) ID() int64 {
	return d.id
}

// CityFrom returns the origin city.
func (d *Destination) CityFrom() string {
	return d.cityFrom
}

// CityTo returns the target city.
func (d *Destination) CityTo() string {
	return d.cityTo
}

// DaysToDeliver returns the transit time in days.
func (d *Destination) DaysToDeliver() int64 {
	return d.daysToDeliver
}

// PriceInCents returns the distance-based price contribution.
func (d *Destination) PriceInCents() kernel.Money {
	return d.priceInCents
}
