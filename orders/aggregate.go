/*
aggregate.go - Filter-and-sum over validated orders

PURPOSE:
  Computes total revenue for the orders selected by a criterion. This is the
  one real contract in the service: a single-pass, stateless fold.

CONTRACT:
  - criterion "all" includes every order regardless of status
  - any other criterion includes only orders whose status equals it
  - each included order contributes price x quantity
  - the result is rounded to 2 decimal places, half up
  - an empty input, or an empty filtered subset, yields 0.00 (not an error)
  - an unrecognized criterion fails with a ValidationError

PRECONDITION:
  Orders have already passed validation (see validate.go). Aggregate does
  not re-validate fields; a negative price here would be a programming
  error, not a runtime condition.

SEE ALSO:
  - types.go: Criterion.Matches, Order.Subtotal
  - report.go: Per-status breakdown built on the same fold
*/
package orders

import "github.com/shopspring/decimal"

// Places is the monetary precision of every total this package produces.
const Places = 2

// Aggregate returns the total revenue of the orders selected by criterion.
// Pure and deterministic; safe for concurrent use.
func Aggregate(list OrderList, criterion Criterion) (decimal.Decimal, error) {
	if !criterion.Valid() {
		return decimal.Zero, fieldError("criterion", ErrUnknownCriterion,
			"%q is not one of completed, pending, canceled, all", string(criterion))
	}

	total := decimal.Zero
	for _, o := range list {
		if criterion.Matches(o.Status) {
			total = total.Add(o.Subtotal())
		}
	}

	// decimal.Round is half away from zero, which for the non-negative
	// sums this domain produces is exactly half-up.
	return total.Round(Places), nil
}
