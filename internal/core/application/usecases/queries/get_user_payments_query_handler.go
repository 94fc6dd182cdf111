package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserPaymentsQueryHandler lists a user's payment receipts straight from
// the database. Receipts survive card removal with a null card reference.
type GetUserPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserPaymentsQueryHandler creates a handler for payment listings.
// Requires a GORM database connection for query execution.
func NewGetUserPaymentsQueryHandler(db *gorm.DB) GetUserPaymentsQueryHandler {
	return GetUserPaymentsQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are sorted by creation time; an unknown login yields an empty
// list rather than an error.
func (h GetUserPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetUserPaymentsQuery,
) ([]GetUserPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.order_id,
			p.account_id,
			p.price_in_cents,
			p.created_at
		FROM payments p
		JOIN users u ON u.id = p.user_id
		WHERE u.login = ?
		ORDER BY p.created_at, p.id
	`, query.Login()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]GetUserPaymentsQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			orderID      uuid.UUID
			accountID    sql.NullInt64
			priceInCents decimal.Decimal
			createdAt    sql.NullTime
		)

		if err = rows.Scan(&id, &orderID, &accountID, &priceInCents, &createdAt); err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		settledOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetUserPaymentsQueryResponse{
			ID:           paymentID,
			OrderID:      settledOrderID,
			PriceInCents: kernel.MoneyFromDecimal(priceInCents),
			CreatedAt:    createdAt.Time.UTC(),
		}
		if accountID.Valid {
			card := accountID.Int64
			resp.AccountID = &card
		}

		payments = append(payments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
