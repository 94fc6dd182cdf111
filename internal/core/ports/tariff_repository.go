package ports

import (
	"context"

	"shipping/internal/core/domain/model/tariff"
)

// TariffRepository provides read access to the tariff reference data used
// for pricing. Tariffs are maintained outside the order lifecycle and only
// ever read here, so the port has no mutating methods.
type TariffRepository interface {
	// GetOrderType retrieves an order type by its identifier.
	// Returns errs.ObjectNotFoundError if no such order type exists.
	GetOrderType(ctx context.Context, id int64) (*tariff.OrderType, error)

	// GetDestination retrieves the destination entry for a city pair.
	// Returns errs.ObjectNotFoundError if the pair has no tariff.
	GetDestination(ctx context.Context, cityFrom, cityTo string) (*tariff.Destination, error)

	// GetDestinationByID retrieves a destination by its identifier.
	// Used when shipping an order whose destination was resolved at creation.
	GetDestinationByID(ctx context.Context, id int64) (*tariff.Destination, error)
}
