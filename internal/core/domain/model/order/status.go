package order

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with a single transition table so that
// every legality check lives in one place.
//
// State transitions:
//
//	NotPaid ──> Paid ──> Shipped ──> Delivered ──> Received ──> Archived
//
// Transitions only move forward, one step at a time. Archived is terminal.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NotPaid is the initial status of a freshly created order.
	// Only orders in this status may be deleted.
	NotPaid

	// Paid indicates the order has been settled: the payer was debited,
	// the collector credited and a payment record created.
	Paid

	// Shipped indicates staff handed the order over for transport.
	Shipped

	// Delivered indicates the order arrived at its destination.
	Delivered

	// Received indicates the customer picked the order up.
	Received

	// Archived is the terminal state with no further transitions allowed.
	Archived
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		NotPaid:   "NOT_PAID",
		Paid:      "PAID",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Received:  "RECEIVED",
		Archived:  "ARCHIVED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotPaid:   "NOT_PAID",
		Paid:      "PAID",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Received:  "RECEIVED",
		Archived:  "ARCHIVED",
	}
}

// transitions is the single source of truth for the order lifecycle.
// Each status maps to the only status it may advance to.
func transitions() map[Status]Status {
	//nolint:exhaustive // Archived is terminal and has no successor
	return map[Status]Status{
		NotPaid:   Paid,
		Paid:      Shipped,
		Shipped:   Delivered,
		Delivered: Received,
		Received:  Archived,
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "NOT_PAID".
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a status from its persisted name.
// Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Next returns the only status this one may advance to.
// The second return value is false for terminal or invalid statuses.
func (s Status) Next() (Status, bool) {
	next, ok := transitions()[s]
	return next, ok
}

// CanTransitionTo reports whether moving to target is a legal single step.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := transitions()[s]
	return ok && next == target
}

// TransitionTo advances the status to target.
//
// Returns:
//   - (target, nil) when target is the legal next step
//   - (0, InvalidStateError) otherwise; the caller's state stays unchanged
//
// Skipping states and moving backwards are both rejected, so a DELIVERED
// order cannot jump to ARCHIVED and a SHIPPED order cannot fall back to PAID.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStateError("order", s.String(), target.statusExpectedFrom())
	}

	return target, nil
}

// IsTerminal reports whether the status has no further transitions.
func (s Status) IsTerminal() bool {
	_, ok := transitions()[s]
	return !ok && s == Archived
}

// statusExpectedFrom names the status an order must be in so that a
// transition into this status is legal. Used for error messages.
func (s Status) statusExpectedFrom() string {
	for from, to := range transitions() {
		if to == s {
			return from.String()
		}
	}
	return "UNKNOWN"
}
