// Package ports defines repository interfaces for the shipping domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their owner and lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate with a row-level lock.
	// Concurrent status transitions on the same order serialize on this lock,
	// so the status read here stays authoritative until the transaction ends.
	// Must be called within an active transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order from storage.
	// Callers decide whether the order's status permits removal.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllInStatus retrieves every order currently in the given status.
	// Used by the archival job to find orders ready to be archived.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
