package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment receipts.
// Receipts are immutable once written; the single mutation supported is
// detaching a removed card so history survives card removal.
type PaymentRepository interface {
	// Add persists a new payment receipt to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment receipt by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such payment exists.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// DetachAccount clears the card reference on every receipt that points
	// at the given card. Called when a card is deleted so receipts keep
	// their amounts and timestamps with a null card reference.
	DetachAccount(ctx context.Context, accountID int64) error
}
