package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetUserPaymentsQueryIsNotConstructed = errors.New(
	"GetUserPaymentsQuery must be created via NewGetUserPaymentsQuery constructor",
)

// GetUserPaymentsQuery retrieves the payment receipts created by a user.
//
// Example:
//
//	query, err := NewGetUserPaymentsQuery("alice")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetUserPaymentsQueryHandler(db)
//
//	payments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get user payments: %w", err)
//	}
type GetUserPaymentsQuery struct {
	login string

	guard guard.ConstructorGuard
}

// NewGetUserPaymentsQuery creates a query for a user's payment history.
func NewGetUserPaymentsQuery(login string) (GetUserPaymentsQuery, error) {
	if login == "" {
		return GetUserPaymentsQuery{}, ErrQueryLoginIsRequired
	}

	return GetUserPaymentsQuery{
		login: login,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserPaymentsQueryIsNotConstructed if validation fails.
func (q GetUserPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserPaymentsQueryIsNotConstructed)
}

// Login returns the login whose payments are requested.
func (q GetUserPaymentsQuery) Login() string {
	return q.login
}

// GetUserPaymentsQueryResponse represents one payment receipt in the listing.
// AccountID is nil when the paying card was removed after the payment.
type GetUserPaymentsQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	AccountID    *int64
	PriceInCents kernel.Money
	CreatedAt    time.Time
}
