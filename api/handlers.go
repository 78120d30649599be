/*
handlers.go - HTTP API handlers for the revenue aggregation service

PURPOSE:
  Exposes the order aggregation core via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Aggregation:
    POST /fonoma/backend/solution  Total revenue for a criterion
    POST /fonoma/backend/summary   Per-status revenue breakdown

  Examples:
    GET  /fonoma/backend/example   Fixed sample dataset + precomputed total
    GET  /fonoma/backend/examples  Catalog of sample datasets

  Operational:
    GET  /healthz                  Liveness probe
    GET  /metrics                  Prometheus exposition (see metrics.go)

REQUEST FLOW:
  1. Parse HTTP request
  2. Check required members (pointer DTO fields)
  3. Call domain logic (validate, aggregate)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 422: Validation errors: bad field value, bad criterion, missing or
         undecodable members. The body names the offending field.
  - 404: Unknown example id
  - 429: Rate limited (see ratelimit.go)
  The core has no external dependencies, so 500s are not expected.

SEE ALSO:
  - dto.go: Request/response data structures
  - examples.go: Sample dataset catalog
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fonoma/revenue-engine/orders"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers. The aggregation core is
// stateless, so the only dependency is the example catalog.
type Handler struct {
	catalog []Example
}

// NewHandler creates a new handler with the built-in example catalog.
func NewHandler() *Handler {
	return &Handler{catalog: Examples()}
}

// =============================================================================
// AGGREGATION HANDLERS
// =============================================================================

// Solution computes total revenue for the submitted orders and criterion.
// POST /fonoma/backend/solution
func (h *Handler) Solution(w http.ResponseWriter, r *http.Request) {
	var req SolutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		recordAggregation("", 0, outcomeRejected)
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body", err)
		return
	}
	if req.Orders == nil {
		recordAggregation("", 0, outcomeRejected)
		writeFieldError(w, "orders", "missing required field")
		return
	}
	if req.Criterion == nil {
		recordAggregation("", 0, outcomeRejected)
		writeFieldError(w, "criterion", "missing required field")
		return
	}

	list, ok := h.collectOrders(w, *req.Orders)
	if !ok {
		recordAggregation(*req.Criterion, len(*req.Orders), outcomeRejected)
		return
	}

	criterion, err := orders.ParseCriterion(*req.Criterion)
	if err != nil {
		recordAggregation(*req.Criterion, len(list), outcomeRejected)
		writeValidationError(w, err)
		return
	}

	total, err := orders.Aggregate(list, criterion)
	if err != nil {
		recordAggregation(string(criterion), len(list), outcomeRejected)
		writeValidationError(w, err)
		return
	}

	recordAggregation(string(criterion), len(list), outcomeOK)
	writeJSON(w, http.StatusOK, TotalResponse{Total: money(total)})
}

// Summary computes the per-status revenue breakdown for the submitted orders.
// POST /fonoma/backend/summary
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid request body", err)
		return
	}
	if req.Orders == nil {
		writeFieldError(w, "orders", "missing required field")
		return
	}

	list, ok := h.collectOrders(w, *req.Orders)
	if !ok {
		return
	}

	s := orders.Summarize(list)
	writeJSON(w, http.StatusOK, SummaryResponse{
		Completed: toStatusTotalDTO(s.Completed),
		Pending:   toStatusTotalDTO(s.Pending),
		Canceled:  toStatusTotalDTO(s.Canceled),
		Total:     money(s.Total),
	})
}

// collectOrders checks required members, converts DTOs to domain orders, and
// runs field validation. On failure it writes the 422 response and returns
// ok=false.
func (h *Handler) collectOrders(w http.ResponseWriter, dtos []OrderDTO) (orders.OrderList, bool) {
	list := make(orders.OrderList, 0, len(dtos))
	for i, d := range dtos {
		if missing := missingField(d); missing != "" {
			writeFieldError(w, fmt.Sprintf("orders[%d].%s", i, missing), "missing required field")
			return nil, false
		}
		list = append(list, d.toDomain())
	}

	if err := orders.ValidateAll(list); err != nil {
		writeValidationError(w, err)
		return nil, false
	}
	return list, true
}

// missingField returns the name of the first absent required member, or "".
func missingField(d OrderDTO) string {
	switch {
	case d.ID == nil:
		return "id"
	case d.Item == nil:
		return "item"
	case d.Quantity == nil:
		return "quantity"
	case d.Price == nil:
		return "price"
	case d.Status == nil:
		return "status"
	}
	return ""
}

// =============================================================================
// EXAMPLE HANDLERS
// =============================================================================

// Example returns a fixed sample dataset and its precomputed aggregation.
// GET /fonoma/backend/example?id=storefront-sample
func (h *Handler) Example(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		id = DefaultExampleID
	}

	ex := h.findExample(id)
	if ex == nil {
		writeError(w, http.StatusNotFound, "Example not found", fmt.Errorf("unknown example id %q", id))
		return
	}

	writeJSON(w, http.StatusOK, ex.toDTO())
}

// ListExamples returns the example catalog without order payloads.
// GET /fonoma/backend/examples
func (h *Handler) ListExamples(w http.ResponseWriter, r *http.Request) {
	infos := make([]ExampleInfoDTO, len(h.catalog))
	for i, ex := range h.catalog {
		infos[i] = ex.toInfoDTO()
	}
	writeJSON(w, http.StatusOK, infos)
}

func (h *Handler) findExample(id string) *Example {
	for i := range h.catalog {
		if h.catalog[i].ID == id {
			return &h.catalog[i]
		}
	}
	return nil
}

// =============================================================================
// OPERATIONAL HANDLERS
// =============================================================================

// Health is a liveness probe.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeFieldError reports a missing required member.
func writeFieldError(w http.ResponseWriter, field, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: message,
		Field: field,
	})
}

// writeValidationError maps a domain validation failure to a 422 naming the
// offending field.
func writeValidationError(w http.ResponseWriter, err error) {
	var verr *orders.ValidationError
	if errors.As(err, &verr) {
		field := verr.Field
		if verr.Index >= 0 {
			field = fmt.Sprintf("orders[%d].%s", verr.Index, verr.Field)
		}
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error: verr.Message,
			Field: field,
		})
		return
	}
	writeError(w, http.StatusUnprocessableEntity, "Validation failed", err)
}
