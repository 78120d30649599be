/*
errors.go - Centralized error types for the orders domain

PURPOSE:
  All error types in one place for consistency and discoverability.
  The HTTP layer maps these to response statuses without inspecting
  message text.

ERROR CATEGORIES:
  1. Field errors - A single order field violates a business rule
  2. Criterion errors - The selection criterion is not recognized

USAGE:
  Callers can test for validation failures generically:

    if orders.IsValidation(err) {
        // 422 territory
    }

  or extract the structured detail:

    var verr *orders.ValidationError
    if errors.As(err, &verr) {
        log.Printf("bad %s in order %d", verr.Field, verr.Index)
    }

SEE ALSO:
  - validate.go: Produces these errors
  - aggregate.go: Produces criterion errors
*/
package orders

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNegativePrice is returned when an order's price is below zero.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrNonPositiveQuantity is returned when an order's quantity is zero
	// or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be greater than zero")

	// ErrEmptyItem is returned when an order's item label is blank.
	ErrEmptyItem = errors.New("item cannot be empty")

	// ErrUnknownStatus is returned when a status is not one of
	// completed, pending, canceled.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrUnknownCriterion is returned when a criterion is not one of
	// completed, pending, canceled, all.
	ErrUnknownCriterion = errors.New("unknown criterion")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError identifies the offending field of a rejected input.
// Index is the position of the order within the submitted collection,
// or -1 when the error does not concern a specific order (bad criterion,
// single-order validation).
type ValidationError struct {
	Field   string
	Index   int
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("orders[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// fieldError builds a ValidationError for a single order field.
func fieldError(field string, sentinel error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Index:   -1,
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation returns true if the error is due to invalid caller input.
// Every error this package produces is a validation failure; the helper
// exists so callers don't have to know that.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
