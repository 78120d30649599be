/*
validate.go - Field-level order validation

PURPOSE:
  Enforces the business rules every order must satisfy before it may be
  aggregated:
    - price must be >= 0
    - quantity must be > 0
    - item must be non-empty
    - status must be one of the recognized values

  Validation is the boundary: once a collection has passed ValidateAll,
  the aggregation trusts it completely and never re-checks fields.

VALIDATION ORDER:
  Fields are checked in a fixed order (price, quantity, item, status) and
  the first violation wins. This keeps error reporting deterministic for a
  given input.

SEE ALSO:
  - errors.go: ValidationError and sentinel errors
  - aggregate.go: Consumes validated orders
*/
package orders

import "strings"

// =============================================================================
// PARSING - External strings to domain values
// =============================================================================

// ParseStatus converts a raw string into a Status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fieldError("status", ErrUnknownStatus,
			"%q is not one of completed, pending, canceled", s)
	}
	return st, nil
}

// ParseCriterion converts a raw string into a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	c := Criterion(s)
	if !c.Valid() {
		return "", fieldError("criterion", ErrUnknownCriterion,
			"%q is not one of completed, pending, canceled, all", s)
	}
	return c, nil
}

// =============================================================================
// ORDER VALIDATION
// =============================================================================

// Validate checks a single order against the business rules. It returns nil
// for a valid order, or a *ValidationError naming the offending field.
func Validate(o Order) error {
	if o.Price.IsNegative() {
		return fieldError("price", ErrNegativePrice,
			"price %s cannot be negative", o.Price.String())
	}
	if o.Quantity <= 0 {
		return fieldError("quantity", ErrNonPositiveQuantity,
			"quantity %d must be greater than zero", o.Quantity)
	}
	if strings.TrimSpace(o.Item) == "" {
		return fieldError("item", ErrEmptyItem, "item cannot be empty")
	}
	if !o.Status.Valid() {
		return fieldError("status", ErrUnknownStatus,
			"%q is not one of completed, pending, canceled", string(o.Status))
	}
	return nil
}

// ValidateAll checks every order in the collection, failing on the first
// invalid one. The returned ValidationError carries the index of the
// offending order within the collection.
func ValidateAll(list OrderList) error {
	for i, o := range list {
		if err := Validate(o); err != nil {
			verr := err.(*ValidationError)
			verr.Index = i
			return verr
		}
	}
	return nil
}
