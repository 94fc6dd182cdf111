package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the common error payload for all endpoints. Code is a
// stable machine-readable failure kind; clients branch on it rather than on
// the HTTP status, which several kinds share.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes carried in ErrorResponse.Code.
const (
	ErrorCodeBadRequest        = "BAD_REQUEST"
	ErrorCodeUnauthorized      = "UNAUTHORIZED"
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrorCodeInvalidState      = "INVALID_STATE"
	ErrorCodeConflict          = "CONFLICT"
	ErrorCodeValidation        = "VALIDATION"
	ErrorCodeConfigMissing     = "CONFIG_MISSING"
	ErrorCodeInternal          = "INTERNAL"
)

// CreateOrderRequest carries the payload for order creation.
type CreateOrderRequest struct {
	Description string          `json:"description"`
	Weight      decimal.Decimal `json:"weight"`
	OrderTypeID int64           `json:"orderTypeId"`
	CityFrom    string          `json:"cityFrom"`
	CityTo      string          `json:"cityTo"`
}

// CreateOrderResponse returns the identifier of a newly created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// PayOrderRequest names the card paying for an order.
type PayOrderRequest struct {
	CardID int64 `json:"cardId"`
}

// AdvanceOrderRequest names the status an order should move to.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

// RegisterCardRequest carries the payload for card registration.
type RegisterCardRequest struct {
	CardID   int64 `json:"cardId"`
	ExpMonth int   `json:"expMonth"`
	ExpYear  int   `json:"expYear"`
	Code     int64 `json:"code"`
}

// TopUpCardRequest carries the amount to credit to a card.
type TopUpCardRequest struct {
	AmountInCents int64 `json:"amountInCents"`
}

// OrderResponse is the listing representation of an order.
type OrderResponse struct {
	ID           string     `json:"id"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	PriceInCents string     `json:"priceInCents"`
	ShippingDate *time.Time `json:"shippingDate,omitempty"`
	DeliveryDate *time.Time `json:"deliveryDate,omitempty"`
}

// PaymentResponse is the listing representation of a payment receipt.
// CardID is null for receipts whose card has been removed.
type PaymentResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	CardID       *int64    `json:"cardId"`
	PriceInCents string    `json:"priceInCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toOrderResponse(item queries.GetUserOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		ID:           item.ID.String(),
		Description:  item.Description,
		Status:       item.Status.String(),
		PriceInCents: item.PriceInCents.String(),
		ShippingDate: item.ShippingDate,
		DeliveryDate: item.DeliveryDate,
	}
}

func toPaymentResponse(item queries.GetUserPaymentsQueryResponse) PaymentResponse {
	return PaymentResponse{
		ID:           item.ID.String(),
		OrderID:      item.OrderID.String(),
		CardID:       item.AccountID,
		PriceInCents: item.PriceInCents.String(),
		CreatedAt:    item.CreatedAt,
	}
}
