package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Each failure kind
// surfaced by the core maps to exactly one of these, so callers can classify
// errors with errors.Is without inspecting messages.
var (
	ErrObjectNotFound       = errors.New("object not found")
	ErrValueIsInvalid       = errors.New("value is invalid")
	ErrValueIsOutOfRange    = errors.New("value is out of range")
	ErrValueIsRequired      = errors.New("value is required")
	ErrInvalidState         = errors.New("invalid state")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrConfigurationMissing = errors.New("configuration is missing")
	ErrConflict             = errors.New("object already exists")
)

// sanitize collapses newlines so multi-line values cannot break log lines.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause, typically a storage-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// the validation failure that caused it.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given
// parameter, value and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError indicates that an operation was attempted against an
// object whose current lifecycle state does not permit it. The object is
// left unchanged when this error is returned.
type InvalidStateError struct {
	ParamName string
	Current   string
	Expected  string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError describing the state an
// operation found and the state it required.
func NewInvalidStateError(paramName, current, expected string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Current: current, Expected: expected}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping
// an underlying cause.
func NewInvalidStateErrorWithCause(paramName, current, expected string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Current: current, Expected: expected, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, expected %s",
		ErrInvalidState, e.ParamName, e.Current, e.Expected)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InsufficientFundsError indicates that an account balance cannot cover a
// requested debit. No balance mutation happens when this error is returned.
type InsufficientFundsError struct {
	AccountID any
	Balance   string
	Required  string
}

// NewInsufficientFundsError creates an InsufficientFundsError carrying the
// offending account, its balance and the required amount.
func NewInsufficientFundsError(accountID any, balance, required string) *InsufficientFundsError {
	return &InsufficientFundsError{AccountID: accountID, Balance: balance, Required: required}
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: account is: %v, balance is %s, required %s",
		ErrInsufficientFunds, e.AccountID, e.Balance, e.Required)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// ConfigurationMissingError indicates that a value the process was configured
// with at startup does not resolve to a usable object at call time, such as
// the collector account settlement credits are sent to.
type ConfigurationMissingError struct {
	ParamName string
	Cause     error
}

// NewConfigurationMissingError creates a ConfigurationMissingError for the
// given configuration parameter.
func NewConfigurationMissingError(paramName string) *ConfigurationMissingError {
	return &ConfigurationMissingError{ParamName: paramName}
}

// NewConfigurationMissingErrorWithCause creates a ConfigurationMissingError
// wrapping an underlying cause.
func NewConfigurationMissingErrorWithCause(paramName string, cause error) *ConfigurationMissingError {
	return &ConfigurationMissingError{ParamName: paramName, Cause: cause}
}

func (e *ConfigurationMissingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConfigurationMissing, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrConfigurationMissing, e.ParamName)
}

func (e *ConfigurationMissingError) Unwrap() error {
	return ErrConfigurationMissing
}

// ConflictError indicates a uniqueness violation on create or save.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError for the given parameter and identifier.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying
// cause, typically the driver's unique-constraint error.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrConflict, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrConflict, e.ID)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
