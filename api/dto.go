/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation (required-field checks via pointers)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

REQUIRED FIELDS:
  Request DTOs use pointer fields so that an absent member can be told apart
  from its zero value. A missing "price" must be a 422, not a free order.

MONEY ON THE WIRE:
  Prices arrive as JSON numbers and are decoded straight into
  decimal.Decimal (which parses the literal text, not a float64 detour).
  Totals go out as float64; after rounding to 2 places they print exactly.

SEE ALSO:
  - handlers.go: Uses these types
  - examples.go: ExampleDTO catalog entries
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/fonoma/revenue-engine/orders"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// OrderDTO is a single order as submitted by a client. All fields are
// required; pointers distinguish "absent" from zero values.
type OrderDTO struct {
	ID       *int             `json:"id"`
	Item     *string          `json:"item"`
	Quantity *int             `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
	Status   *string          `json:"status"`
}

// SolutionRequest is the body of POST /fonoma/backend/solution.
type SolutionRequest struct {
	Orders    *[]OrderDTO `json:"orders"`
	Criterion *string     `json:"criterion"`
}

// SummaryRequest is the body of POST /fonoma/backend/summary.
type SummaryRequest struct {
	Orders *[]OrderDTO `json:"orders"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// TotalResponse carries an aggregation result.
type TotalResponse struct {
	Total float64 `json:"total"`
}

// StatusTotalDTO is one entry of a per-status breakdown.
type StatusTotalDTO struct {
	Orders int     `json:"orders"`
	Total  float64 `json:"total"`
}

// SummaryResponse is the per-status revenue breakdown.
type SummaryResponse struct {
	Completed StatusTotalDTO `json:"completed"`
	Pending   StatusTotalDTO `json:"pending"`
	Canceled  StatusTotalDTO `json:"canceled"`
	Total     float64        `json:"total"`
}

// SampleOrderDTO is an order inside an example dataset. Unlike OrderDTO it
// has no pointers: examples are server-authored and always complete.
type SampleOrderDTO struct {
	ID       int     `json:"id"`
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// ExampleDTO is a fixed sample dataset with its precomputed aggregation.
type ExampleDTO struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Orders      []SampleOrderDTO `json:"orders"`
	Criterion   string           `json:"criterion"`
	Total       float64          `json:"total"`
}

// ExampleInfoDTO is a catalog listing entry (no order payload).
type ExampleInfoDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Criterion   string  `json:"criterion"`
	Total       float64 `json:"total"`
}

// ErrorResponse is the error body for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// toDomain converts a complete OrderDTO to a domain order. Required-field
// checks happen in the handler before this is called.
func (d OrderDTO) toDomain() orders.Order {
	return orders.Order{
		ID:       *d.ID,
		Item:     *d.Item,
		Quantity: *d.Quantity,
		Price:    *d.Price,
		Status:   orders.Status(*d.Status),
	}
}

func toStatusTotalDTO(t orders.StatusTotal) StatusTotalDTO {
	return StatusTotalDTO{Orders: t.Orders, Total: money(t.Total)}
}

// money converts a rounded decimal total to its wire representation.
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
