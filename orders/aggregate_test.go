/*
aggregate_test.go - Unit tests for revenue aggregation

Tests for:
- Criterion filtering and quantity weighting
- Rounding and empty-input behavior
- The partition property: per-status totals sum to the "all" total
- Per-status summary breakdown
*/
package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonoma/revenue-engine/orders"
)

// =============================================================================
// TEST FIXTURES
// =============================================================================

func order(id int, item string, qty int, price string, status orders.Status) orders.Order {
	return orders.Order{
		ID:       id,
		Item:     item,
		Quantity: qty,
		Price:    mustDecimal(price),
		Status:   status,
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// storefront is the canonical worked example from the service contract.
func storefront() orders.OrderList {
	return orders.OrderList{
		order(1, "Laptop", 1, "999.99", orders.StatusCompleted),
		order(2, "Smartphone", 2, "499.95", orders.StatusPending),
		order(3, "Headphones", 3, "99.90", orders.StatusCompleted),
		order(4, "Mouse", 4, "24.99", orders.StatusCanceled),
		order(5, "Tablet", 1, "299.50", orders.StatusPending),
	}
}

func aggregate(t *testing.T, list orders.OrderList, c orders.Criterion) decimal.Decimal {
	t.Helper()
	total, err := orders.Aggregate(list, c)
	require.NoError(t, err)
	return total
}

// =============================================================================
// CRITERION FILTERING
// =============================================================================

func TestAggregate_Completed(t *testing.T) {
	// Laptop 1x999.99 + Headphones 3x99.90 = 999.99 + 299.70 = 1299.69
	total := aggregate(t, storefront(), orders.CriterionCompleted)
	assert.True(t, total.Equal(mustDecimal("1299.69")), "got %s", total)
}

func TestAggregate_Pending(t *testing.T) {
	// Smartphone 2x499.95 + Tablet 1x299.50 = 999.90 + 299.50 = 1299.40
	total := aggregate(t, storefront(), orders.CriterionPending)
	assert.True(t, total.Equal(mustDecimal("1299.40")), "got %s", total)
}

func TestAggregate_Canceled(t *testing.T) {
	// Mouse 4x24.99 = 99.96
	total := aggregate(t, storefront(), orders.CriterionCanceled)
	assert.True(t, total.Equal(mustDecimal("99.96")), "got %s", total)
}

func TestAggregate_All(t *testing.T) {
	// 1299.69 + 1299.40 + 99.96 = 2699.05
	total := aggregate(t, storefront(), orders.CriterionAll)
	assert.True(t, total.Equal(mustDecimal("2699.05")), "got %s", total)
}

func TestAggregate_PartitionProperty(t *testing.T) {
	// GIVEN: Any valid collection
	// THEN: completed + pending + canceled == all
	list := storefront()

	sum := decimal.Zero
	for _, c := range []orders.Criterion{orders.CriterionCompleted, orders.CriterionPending, orders.CriterionCanceled} {
		sum = sum.Add(aggregate(t, list, c))
	}

	all := aggregate(t, list, orders.CriterionAll)
	assert.True(t, sum.Equal(all), "partition %s != all %s", sum, all)
}

// =============================================================================
// EDGE CASES
// =============================================================================

func TestAggregate_EmptyList(t *testing.T) {
	for _, c := range []orders.Criterion{
		orders.CriterionCompleted, orders.CriterionPending,
		orders.CriterionCanceled, orders.CriterionAll,
	} {
		total := aggregate(t, orders.OrderList{}, c)
		assert.True(t, total.IsZero(), "criterion %s: got %s", c, total)
	}
}

func TestAggregate_NoMatchingStatus(t *testing.T) {
	list := orders.OrderList{order(1, "Laptop", 1, "999.99", orders.StatusCompleted)}

	total := aggregate(t, list, orders.CriterionPending)
	assert.True(t, total.IsZero())
}

func TestAggregate_RoundsHalfUp(t *testing.T) {
	// 3 x 33.333 = 99.999 -> 100.00
	list := orders.OrderList{order(1, "Widget", 3, "33.333", orders.StatusCompleted)}

	total := aggregate(t, list, orders.CriterionCompleted)
	assert.True(t, total.Equal(mustDecimal("100.00")), "got %s", total)
}

func TestAggregate_LargeQuantity(t *testing.T) {
	// 1000 x 0.50 = 500.00; binary floats would drift here, decimals don't
	list := orders.OrderList{order(1, "BulkItem", 1000, "0.50", orders.StatusCompleted)}

	total := aggregate(t, list, orders.CriterionCompleted)
	assert.True(t, total.Equal(mustDecimal("500.00")), "got %s", total)
}

func TestAggregate_UnknownCriterion(t *testing.T) {
	_, err := orders.Aggregate(storefront(), orders.Criterion("refunded"))

	require.Error(t, err)
	assert.ErrorIs(t, err, orders.ErrUnknownCriterion)

	var verr *orders.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "criterion", verr.Field)
}

// =============================================================================
// SUMMARY
// =============================================================================

func TestSummarize_MatchesAggregate(t *testing.T) {
	list := storefront()
	s := orders.Summarize(list)

	assert.True(t, s.Completed.Total.Equal(mustDecimal("1299.69")))
	assert.True(t, s.Pending.Total.Equal(mustDecimal("1299.40")))
	assert.True(t, s.Canceled.Total.Equal(mustDecimal("99.96")))
	assert.True(t, s.Total.Equal(mustDecimal("2699.05")))

	assert.Equal(t, 2, s.Completed.Orders)
	assert.Equal(t, 2, s.Pending.Orders)
	assert.Equal(t, 1, s.Canceled.Orders)
}

func TestSummarize_Empty(t *testing.T) {
	s := orders.Summarize(nil)

	assert.True(t, s.Total.IsZero())
	assert.Equal(t, 0, s.Completed.Orders)
	assert.True(t, s.ForStatus(orders.StatusPending).Total.IsZero())
}
