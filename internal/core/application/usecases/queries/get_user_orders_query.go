// Package queries contains read-only operations for the CQRS architecture.
// Query handlers bypass the domain aggregates and read the database directly,
// returning flat response structures shaped for the API.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
	ErrQueryLoginIsRequired = errors.New("login is required")
)

// GetUserOrdersQuery retrieves the orders created by a user, optionally
// filtered by status.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery("alice", "SHIPPED")
//	if err != nil {
//	    return err
//	}
//	handler := NewGetUserOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get user orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetUserOrdersQuery struct {
	login        string
	statusFilter order.Status

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a query for a user's orders.
// An empty status means no filtering; a non-empty status must be one of the
// canonical status strings.
func NewGetUserOrdersQuery(login, status string) (GetUserOrdersQuery, error) {
	if login == "" {
		return GetUserOrdersQuery{}, ErrQueryLoginIsRequired
	}

	query := GetUserOrdersQuery{
		login: login,
		guard: guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetUserOrdersQuery{}, err
		}
		query.statusFilter = parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserOrdersQueryIsNotConstructed if validation fails.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// Login returns the login whose orders are requested.
func (q GetUserOrdersQuery) Login() string {
	return q.login
}

// StatusFilter returns the requested status, or order.Unknown for no filter.
func (q GetUserOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// GetUserOrdersQueryResponse represents one order in the listing.
type GetUserOrdersQueryResponse struct {
	ID           kernel.UUID
	Description  string
	Status       order.Status
	PriceInCents kernel.Money
	ShippingDate *time.Time
	DeliveryDate *time.Time
}
