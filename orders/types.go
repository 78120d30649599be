/*
Package orders provides the core revenue aggregation domain.

PURPOSE:
  This package contains the types and algorithms for validating purchase
  orders and computing total revenue filtered by order status. The whole
  domain is a pure, stateless transformation: a collection of orders and a
  selection criterion go in, a decimal total comes out.

KEY CONCEPTS IN THIS FILE (types.go):
  - Order: A single purchase record (id, item, quantity, price, status)
  - Status: The lifecycle state of an order (completed, pending, canceled)
  - Criterion: The status filter selecting which orders contribute to a total
  - OrderList: An ordered collection of orders, request-scoped and ephemeral

DESIGN PRINCIPLES:
  1. Purity: No state is retained between calls; every function is a
     deterministic transformation of its inputs
  2. Precision: Uses decimal.Decimal for all monetary arithmetic to avoid
     floating-point drift
  3. Validate once: Orders are validated at the boundary; the aggregation
     assumes validated input and never re-checks fields

USAGE:
  order := orders.Order{
      ID:       1,
      Item:     "Laptop",
      Quantity: 1,
      Price:    decimal.NewFromFloat(999.99),
      Status:   orders.StatusCompleted,
  }
  total, err := orders.Aggregate(orders.OrderList{order}, orders.CriterionCompleted)

SEE ALSO:
  - validate.go: Field-level order validation
  - aggregate.go: Filter-and-sum over validated orders
  - errors.go: Validation error types
*/
package orders

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// STATUS - Lifecycle state of an order
// =============================================================================

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusCanceled  Status = "canceled"
)

// Statuses lists every recognized order status, in presentation order.
var Statuses = []Status{StatusCompleted, StatusPending, StatusCanceled}

// Valid reports whether s is one of the recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCanceled:
		return true
	}
	return false
}

// =============================================================================
// CRITERION - Status filter for aggregation
// =============================================================================

// Criterion selects which orders' statuses contribute to a total.
// It is the set of statuses plus "all", which disables filtering.
type Criterion string

const (
	CriterionCompleted Criterion = "completed"
	CriterionPending   Criterion = "pending"
	CriterionCanceled  Criterion = "canceled"
	CriterionAll       Criterion = "all"
)

// Valid reports whether c is one of the recognized criteria.
func (c Criterion) Valid() bool {
	switch c {
	case CriterionCompleted, CriterionPending, CriterionCanceled, CriterionAll:
		return true
	}
	return false
}

// Matches reports whether an order with the given status is selected by c.
func (c Criterion) Matches(s Status) bool {
	return c == CriterionAll || string(c) == string(s)
}

// =============================================================================
// ORDER - A single purchase record
// =============================================================================

type Order struct {
	ID       int
	Item     string
	Quantity int
	Price    decimal.Decimal
	Status   Status
}

// Subtotal returns the order's revenue contribution: price times quantity.
// Price is a unit price; the worked examples in the service contract weight
// it by quantity.
func (o Order) Subtotal() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// =============================================================================
// ORDER LIST - Request-scoped collection
// =============================================================================

// OrderList is an ordered sequence of orders. Order of iteration is preserved
// for deterministic validation reporting; the aggregation itself is
// commutative and does not depend on it.
type OrderList []Order
