package order

import (
	"errors"
	"fmt"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPaymentAlreadyLinked is returned when a second payment is attached
	// to an order. The payment link is set exactly once, during settlement.
	ErrPaymentAlreadyLinked = errors.New("order is already linked to a payment")
)

// Order represents a shipment order. It is the aggregate root that manages
// the order lifecycle from creation through payment, shipping and archival.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owner
//   - Weight must be positive
//   - The shipping price is computed once at creation and is immutable afterwards
//   - Status transitions follow the table owned by Status
//   - The payment link is set exactly once, by the NOT_PAID -> PAID transition
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	// ownerID references the user who created the order
	ownerID kernel.UUID

	description string

	// weight in kilograms (must be positive)
	weight decimal.Decimal

	// orderTypeID and destinationID reference read-only tariff data
	orderTypeID   int64
	destinationID int64

	// priceInCents is frozen at creation; later tariff changes never
	// reprice an existing order
	priceInCents kernel.Money

	status Status

	// shippingDate is stamped by the PAID -> SHIPPED transition, nil before
	shippingDate *time.Time

	// deliveryDate holds the estimate stamped on shipping, overwritten with
	// the actual date on delivery
	deliveryDate *time.Time

	// paymentID links the order to the payment that settled it
	paymentID *kernel.UUID

	isConstructed bool
}

// NewOrder creates a new Order in NOT_PAID status with its price frozen.
// This is the only way to create a fresh order, ensuring all business
// invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order
//   - ownerID: the creating user
//   - description: free-form parcel description
//   - weight: parcel weight, must be positive
//   - orderTypeID, destinationID: resolved tariff references
//   - priceInCents: the price computed for this order, frozen from here on
func NewOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	description string,
	weight decimal.Decimal,
	orderTypeID int64,
	destinationID int64,
	priceInCents kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        NotPaid,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setWeight(weight),
		o.setOrderTypeID(orderTypeID),
		o.setDestinationID(destinationID),
		o.setPrice(priceInCents),
	); err != nil {
		return nil, err
	}

	o.description = description
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// date stamps and payment link. The status/payment combination is validated:
// settled orders must carry a payment reference and unsettled ones must not.
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	description string,
	weight decimal.Decimal,
	orderTypeID int64,
	destinationID int64,
	priceInCents kernel.Money,
	status Status,
	shippingDate *time.Time,
	deliveryDate *time.Time,
	paymentID *kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, ownerID, description, weight, orderTypeID, destinationID, priceInCents)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if err = validateStatusCanHavePayment(status, paymentID != nil); err != nil {
		return nil, err
	}

	o.status = status
	o.shippingDate = shippingDate
	o.deliveryDate = deliveryDate
	o.paymentID = paymentID
	return o, nil
}

// validateStatusCanHavePayment enforces consistency between order status and
// the payment link: NOT_PAID orders must not reference a payment, settled
// orders must.
func validateStatusCanHavePayment(status Status, hasPayment bool) error {
	if hasPayment && status == NotPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a payment", status),
		)
	}

	if !hasPayment && status != NotPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no payment", status),
		)
	}

	return nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who created the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Description returns the free-form parcel description.
func (o *Order) Description() string {
	return o.description
}

// Weight returns the parcel weight.
func (o *Order) Weight() decimal.Decimal {
	return o.weight
}

// OrderTypeID returns the tariff order-type reference.
func (o *Order) OrderTypeID() int64 {
	return o.orderTypeID
}

// DestinationID returns the tariff destination reference.
func (o *Order) DestinationID() int64 {
	return o.destinationID
}

// PriceInCents returns the price frozen at creation.
func (o *Order) PriceInCents() kernel.Money {
	return o.priceInCents
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShippingDate returns the date the order was handed over for transport.
// Nil until the order is shipped.
func (o *Order) ShippingDate() *time.Time {
	return o.shippingDate
}

// DeliveryDate returns the delivery estimate while the order is in transit
// and the actual delivery date afterwards. Nil until the order is shipped.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// PaymentID returns the identifier of the payment that settled the order.
// Nil while the order is NOT_PAID.
func (o *Order) PaymentID() *kernel.UUID {
	return o.paymentID
}

// CanBeDeleted reports whether the order may still be deleted.
// Only NOT_PAID orders are deletable; a paid order is committed.
func (o *Order) CanBeDeleted() bool {
	return o.status == NotPaid
}

// MarkPaid transitions the order to PAID and links it to the settling payment.
//
// This method is invoked exclusively by the settlement engine. It enforces:
//   - the order must be NOT_PAID (re-payment is rejected)
//   - the payment link is set exactly once
//
// On failure the order is left completely unchanged.
func (o *Order) MarkPaid(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	if o.paymentID != nil {
		return ErrPaymentAlreadyLinked
	}

	newStatus, err := o.status.TransitionTo(Paid)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentID = &paymentID
	return nil
}

// Ship transitions the order to SHIPPED.
//
// Side effects:
//   - shippingDate is stamped to the day after now
//   - deliveryDate is stamped to now plus the destination's transit days
//     (an estimate, overwritten by Deliver)
//
// Fails with InvalidStateError unless the order is PAID; the order is left
// unchanged on failure.
func (o *Order) Ship(now time.Time, daysToDeliver int64) error {
	newStatus, err := o.status.TransitionTo(Shipped)
	if err != nil {
		return err
	}

	shippingDate := now.AddDate(0, 0, 1)
	deliveryDate := now.AddDate(0, 0, int(daysToDeliver))

	o.status = newStatus
	o.shippingDate = &shippingDate
	o.deliveryDate = &deliveryDate
	return nil
}

// Deliver transitions the order to DELIVERED and overwrites the delivery
// estimate with the day after now. Fails with InvalidStateError unless the
// order is SHIPPED; the order is left unchanged on failure.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	deliveryDate := now.AddDate(0, 0, 1)

	o.status = newStatus
	o.deliveryDate = &deliveryDate
	return nil
}

// Receive transitions the order to RECEIVED. Status only, no date stamps.
// Fails with InvalidStateError unless the order is DELIVERED.
func (o *Order) Receive() error {
	newStatus, err := o.status.TransitionTo(Received)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Archive transitions the order to ARCHIVED, the terminal state.
// Fails with InvalidStateError unless the order is RECEIVED. The lenient
// no-op behavior for mismatched states lives in the archive command handler,
// not here.
func (o *Order) Archive() error {
	newStatus, err := o.status.TransitionTo(Archived)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%s is not greater than 0", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setOrderTypeID(orderTypeID int64) error {
	if orderTypeID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderTypeID is invalid", fmt.Errorf("%d is not greater than 0", orderTypeID))
	}
	o.orderTypeID = orderTypeID
	return nil
}

func (o *Order) setDestinationID(destinationID int64) error {
	if destinationID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("destinationID is invalid", fmt.Errorf("%d is not greater than 0", destinationID))
	}
	o.destinationID = destinationID
	return nil
}

func (o *Order) setPrice(priceInCents kernel.Money) error {
	if priceInCents.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("priceInCents is invalid", fmt.Errorf("%s is negative", priceInCents))
	}
	o.priceInCents = priceInCents
	return nil
}
