/*
examples.go - Sample dataset catalog for documentation and demos

PURPOSE:

	Provides pre-built order datasets with precomputed aggregations for
	documentation, demos, and client integration testing. Each example is a
	complete, valid request body plus the total the service would return
	for it.

AVAILABLE EXAMPLES:

	storefront-sample:  The canonical 4-order dataset (criterion: completed)
	mixed-statuses:     5 orders across every status (criterion: all)
	bulk-orders:        Large quantities, sub-dollar prices (criterion: completed)
	empty-day:          No orders at all (criterion: all, total 0.00)

HOW EXAMPLES WORK:
 1. The catalog is assembled once at handler construction
 2. Totals are computed through the same Aggregate the solution endpoint uses,
    so the docs can never drift from the implementation
 3. Examples are read-only; nothing is stored anywhere

USAGE VIA API:

	GET /fonoma/backend/example                       (default dataset)
	GET /fonoma/backend/example?id=mixed-statuses
	GET /fonoma/backend/examples                      (catalog listing)

ADDING NEW EXAMPLES:
 1. Add an Example to the slice in Examples()
 2. That's it; totals and listings derive from the data

SEE ALSO:
  - handlers.go: Example, ListExamples handlers
  - orders/aggregate.go: The aggregation the totals come from
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/fonoma/revenue-engine/orders"
)

// DefaultExampleID is served when no id query parameter is given.
const DefaultExampleID = "storefront-sample"

// =============================================================================
// EXAMPLE DEFINITIONS
// =============================================================================

// Example is a named sample dataset with its selection criterion.
type Example struct {
	ID          string
	Name        string
	Description string
	Orders      orders.OrderList
	Criterion   orders.Criterion
}

// Examples returns the built-in catalog.
func Examples() []Example {
	return []Example{
		{
			ID:          "storefront-sample",
			Name:        "Storefront Sample",
			Description: "The canonical worked example: completed orders total 1299.69",
			Criterion:   orders.CriterionCompleted,
			Orders: orders.OrderList{
				sample(1, "Laptop", 1, "999.99", orders.StatusCompleted),
				sample(2, "Smartphone", 2, "499.95", orders.StatusPending),
				sample(3, "Headphones", 3, "99.90", orders.StatusCompleted),
				sample(4, "Mouse", 4, "24.99", orders.StatusCanceled),
			},
		},
		{
			ID:          "mixed-statuses",
			Name:        "Mixed Statuses",
			Description: "Five orders across every status, aggregated without a filter",
			Criterion:   orders.CriterionAll,
			Orders: orders.OrderList{
				sample(1, "Laptop", 1, "999.99", orders.StatusCompleted),
				sample(2, "Smartphone", 2, "499.95", orders.StatusPending),
				sample(3, "Headphones", 3, "99.90", orders.StatusCompleted),
				sample(4, "Mouse", 4, "24.99", orders.StatusCanceled),
				sample(5, "Tablet", 1, "299.50", orders.StatusPending),
			},
		},
		{
			ID:          "bulk-orders",
			Name:        "Bulk Orders",
			Description: "Large quantities at sub-dollar prices; decimal arithmetic keeps cents exact",
			Criterion:   orders.CriterionCompleted,
			Orders: orders.OrderList{
				sample(1, "Sticker Pack", 1000, "0.50", orders.StatusCompleted),
				sample(2, "Keychain", 250, "1.99", orders.StatusCompleted),
				sample(3, "Poster Tube", 40, "7.25", orders.StatusPending),
			},
		},
		{
			ID:          "empty-day",
			Name:        "Empty Day",
			Description: "No orders; the total is 0.00, not an error",
			Criterion:   orders.CriterionAll,
			Orders:      orders.OrderList{},
		},
	}
}

func sample(id int, item string, qty int, price string, status orders.Status) orders.Order {
	d, err := decimal.NewFromString(price)
	if err != nil {
		panic("examples: bad price literal " + price)
	}
	return orders.Order{ID: id, Item: item, Quantity: qty, Price: d, Status: status}
}

// =============================================================================
// DTO CONVERSION
// =============================================================================

// total runs the example through the real aggregation. The catalog is
// server-authored and always valid, so the error path is unreachable.
func (e Example) total() decimal.Decimal {
	t, err := orders.Aggregate(e.Orders, e.Criterion)
	if err != nil {
		panic("examples: invalid catalog entry " + e.ID)
	}
	return t
}

func (e Example) toDTO() ExampleDTO {
	dtos := make([]SampleOrderDTO, len(e.Orders))
	for i, o := range e.Orders {
		dtos[i] = SampleOrderDTO{
			ID:       o.ID,
			Item:     o.Item,
			Quantity: o.Quantity,
			Price:    o.Price.InexactFloat64(),
			Status:   string(o.Status),
		}
	}
	return ExampleDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Orders:      dtos,
		Criterion:   string(e.Criterion),
		Total:       money(e.total()),
	}
}

func (e Example) toInfoDTO() ExampleInfoDTO {
	return ExampleInfoDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Criterion:   string(e.Criterion),
		Total:       money(e.total()),
	}
}
