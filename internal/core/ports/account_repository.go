package ports

import (
	"context"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for bank card accounts.
// Cards are shared aggregates: the same card may be registered by several
// users, so ownership links live next to the card rows rather than inside
// the aggregate.
type AccountRepository interface {
	// Add persists a new account to storage.
	// Returns errs.ConflictError if a card with the same number already exists.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by card number.
	// Returns errs.ObjectNotFoundError if no such card exists.
	Get(ctx context.Context, id int64) (*account.Account, error)

	// GetForUpdate retrieves an account by card number and takes a row lock
	// that is held until the surrounding transaction finishes. Callers
	// locking several accounts must do so in ascending card number order.
	GetForUpdate(ctx context.Context, id int64) (*account.Account, error)

	// Delete removes an account and its ownership links from storage.
	Delete(ctx context.Context, id int64) error

	// Link records that the given user registered the card.
	// Linking an already linked pair is a no-op.
	Link(ctx context.Context, id int64, userID kernel.UUID) error

	// Unlink removes the ownership link between the card and the user.
	// Returns the number of remaining owners so callers can decide whether
	// the card itself is still referenced.
	Unlink(ctx context.Context, id int64, userID kernel.UUID) (remaining int64, err error)

	// OwnedBy reports whether the given user has the card registered.
	OwnedBy(ctx context.Context, id int64, userID kernel.UUID) (bool, error)
}
