/*
validate_test.go - Unit tests for order validation

Tests for:
- Field-level rules (price, quantity, item, status)
- Status and criterion parsing
- Index reporting for collection validation
*/
package orders_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonoma/revenue-engine/orders"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func validOrder(id int) orders.Order {
	return orders.Order{
		ID:       id,
		Item:     "Laptop",
		Quantity: 1,
		Price:    decimal.NewFromFloat(999.99),
		Status:   orders.StatusCompleted,
	}
}

// =============================================================================
// FIELD RULES
// =============================================================================

func TestValidate_ValidOrder(t *testing.T) {
	assert.NoError(t, orders.Validate(validOrder(1)))
}

func TestValidate_NegativePrice_Rejected(t *testing.T) {
	// GIVEN: An order priced one cent below zero
	o := validOrder(1)
	o.Price = decimal.NewFromFloat(-0.01)

	// WHEN: Validating
	err := orders.Validate(o)

	// THEN: Rejected, naming the price field
	require.Error(t, err)
	assert.ErrorIs(t, err, orders.ErrNegativePrice)

	var verr *orders.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "price", verr.Field)
}

func TestValidate_ZeroPrice_Accepted(t *testing.T) {
	// Free items are legal; the rule is price >= 0, not price > 0.
	o := validOrder(1)
	o.Price = decimal.Zero
	assert.NoError(t, orders.Validate(o))
}

func TestValidate_ZeroQuantity_Rejected(t *testing.T) {
	o := validOrder(1)
	o.Quantity = 0

	err := orders.Validate(o)

	require.Error(t, err)
	assert.ErrorIs(t, err, orders.ErrNonPositiveQuantity)

	var verr *orders.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Field)
}

func TestValidate_NegativeQuantity_Rejected(t *testing.T) {
	o := validOrder(1)
	o.Quantity = -1

	err := orders.Validate(o)
	assert.ErrorIs(t, err, orders.ErrNonPositiveQuantity)
}

func TestValidate_EmptyItem_Rejected(t *testing.T) {
	o := validOrder(1)
	o.Item = "   "

	err := orders.Validate(o)

	require.Error(t, err)
	assert.ErrorIs(t, err, orders.ErrEmptyItem)
}

func TestValidate_UnknownStatus_Rejected(t *testing.T) {
	// "shipped" is not part of the status enum
	o := validOrder(1)
	o.Status = orders.Status("shipped")

	err := orders.Validate(o)

	require.Error(t, err)
	assert.ErrorIs(t, err, orders.ErrUnknownStatus)

	var verr *orders.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

// =============================================================================
// COLLECTION VALIDATION
// =============================================================================

func TestValidateAll_ReportsOffendingIndex(t *testing.T) {
	// GIVEN: A collection where the third order is invalid
	list := orders.OrderList{validOrder(1), validOrder(2), validOrder(3)}
	list[2].Quantity = 0

	// WHEN: Validating the collection
	err := orders.ValidateAll(list)

	// THEN: The error carries the index of the bad order
	require.Error(t, err)
	var verr *orders.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, verr.Index)
	assert.Equal(t, "quantity", verr.Field)
}

func TestValidateAll_EmptyCollection(t *testing.T) {
	assert.NoError(t, orders.ValidateAll(orders.OrderList{}))
	assert.NoError(t, orders.ValidateAll(nil))
}

func TestValidateAll_FirstViolationWins(t *testing.T) {
	list := orders.OrderList{validOrder(1), validOrder(2)}
	list[0].Price = decimal.NewFromFloat(-1)
	list[1].Quantity = 0

	err := orders.ValidateAll(list)

	var verr *orders.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, verr.Index)
	assert.Equal(t, "price", verr.Field)
}

// =============================================================================
// PARSING
// =============================================================================

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"completed", "pending", "canceled"} {
		st, err := orders.ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, orders.Status(s), st)
	}

	_, err := orders.ParseStatus("shipped")
	assert.ErrorIs(t, err, orders.ErrUnknownStatus)
	assert.True(t, orders.IsValidation(err))
}

func TestParseCriterion(t *testing.T) {
	for _, s := range []string{"completed", "pending", "canceled", "all"} {
		c, err := orders.ParseCriterion(s)
		assert.NoError(t, err)
		assert.Equal(t, orders.Criterion(s), c)
	}

	_, err := orders.ParseCriterion("ALL")
	assert.ErrorIs(t, err, orders.ErrUnknownCriterion, "criteria are case-sensitive")
}

func TestIsValidation_UnrelatedError(t *testing.T) {
	assert.False(t, orders.IsValidation(errors.New("boom")))
	assert.False(t, orders.IsValidation(nil))
}
