package services

import (
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceCalculator computes the shipping price of an order from tariff data
// and order attributes. It is pure and deterministic:
//
//	price = destinationPrice + orderTypePrice + weight*weightCoefficient + basePrice
//
// The two constants are injected at construction and never read from ambient
// state. The calculator is invoked exactly once per order, at creation time;
// the result is frozen on the order, so later tariff changes never reprice
// existing orders.
//
// Example usage:
//
//	calculator := services.NewPriceCalculator(basePrice, weightCoefficient)
//	price, err := calculator.Calculate(destination, orderType, weight)
type PriceCalculator struct {
	basePrice         kernel.Money
	weightCoefficient decimal.Decimal
}

// NewPriceCalculator creates a PriceCalculator with the configured constants.
func NewPriceCalculator(basePrice kernel.Money, weightCoefficient decimal.Decimal) PriceCalculator {
	return PriceCalculator{
		basePrice:         basePrice,
		weightCoefficient: weightCoefficient,
	}
}

// Calculate returns the price for shipping a parcel of the given weight to
// the given destination as the given order type.
//
// Returns an error if the tariff entries were not properly constructed or
// the weight is not positive; no side effects in any case.
func (c PriceCalculator) Calculate(
	destination *tariff.Destination,
	orderType *tariff.OrderType,
	weight decimal.Decimal,
) (kernel.Money, error) {
	if err := destination.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := orderType.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if !weight.IsPositive() {
		return kernel.Money{}, errs.NewValueIsInvalidError("weight")
	}

	priceForWeight := kernel.MoneyFromDecimal(weight.Mul(c.weightCoefficient))

	return destination.PriceInCents().
		Add(orderType.PriceInCents()).
		Add(priceForWeight).
		Add(c.basePrice), nil
}
