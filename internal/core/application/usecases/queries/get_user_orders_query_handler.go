package queries

import (
	"context"
	"database/sql"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler lists a user's orders straight from the database.
//
// Example:
//
//	handler := NewGetUserOrdersQueryHandler(db)
//	query, _ := NewGetUserOrdersQuery("alice", "")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for user order listings.
// Requires a GORM database connection for query execution.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Results are sorted by order ID for consistent output; an unknown login
// yields an empty list rather than an error.
func (h GetUserOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUserOrdersQuery,
) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id,
			o.description,
			o.status,
			o.price_in_cents,
			o.shipping_date,
			o.delivery_date
		FROM orders o
		JOIN users u ON u.id = o.owner_id
		WHERE u.login = ?
	`
	args := []any{query.Login()}

	if query.StatusFilter() != order.Unknown {
		sqlText += " AND o.status = ?"
		args = append(args, query.StatusFilter().String())
	}
	sqlText += " ORDER BY o.id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetUserOrdersQueryResponse, 0)

	for rows.Next() {
		var (
			id           uuid.UUID
			description  string
			status       string
			priceInCents decimal.Decimal
			shippingDate sql.NullTime
			deliveryDate sql.NullTime
		)

		if err = rows.Scan(&id, &description, &status, &priceInCents, &shippingDate, &deliveryDate); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orderStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}

		resp := GetUserOrdersQueryResponse{
			ID:           orderID,
			Description:  description,
			Status:       orderStatus,
			PriceInCents: kernel.MoneyFromDecimal(priceInCents),
		}
		if shippingDate.Valid {
			shipped := shippingDate.Time.UTC()
			resp.ShippingDate = &shipped
		}
		if deliveryDate.Valid {
			delivered := deliveryDate.Time.UTC()
			resp.DeliveryDate = &delivered
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
