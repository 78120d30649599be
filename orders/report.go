/*
report.go - Per-status revenue breakdown

PURPOSE:
  Summarize computes, in one pass, what three separate Aggregate calls would:
  the revenue and order count for each status, plus the grand total. The
  per-status totals partition the grand total by construction.

SEE ALSO:
  - aggregate.go: Single-criterion total
*/
package orders

import "github.com/shopspring/decimal"

// StatusTotal is the revenue attributed to a single status.
type StatusTotal struct {
	Orders int
	Total  decimal.Decimal
}

// Summary is a per-status revenue breakdown of an order collection.
type Summary struct {
	Completed StatusTotal
	Pending   StatusTotal
	Canceled  StatusTotal
	Total     decimal.Decimal
}

// ForStatus returns the breakdown entry for the given status.
func (s Summary) ForStatus(st Status) StatusTotal {
	switch st {
	case StatusCompleted:
		return s.Completed
	case StatusPending:
		return s.Pending
	case StatusCanceled:
		return s.Canceled
	}
	return StatusTotal{Total: decimal.Zero}
}

// Summarize computes the per-status breakdown of a validated collection.
// Like Aggregate, it assumes validation already happened.
func Summarize(list OrderList) Summary {
	totals := map[Status]decimal.Decimal{
		StatusCompleted: decimal.Zero,
		StatusPending:   decimal.Zero,
		StatusCanceled:  decimal.Zero,
	}
	counts := map[Status]int{}
	grand := decimal.Zero

	for _, o := range list {
		totals[o.Status] = totals[o.Status].Add(o.Subtotal())
		counts[o.Status]++
		grand = grand.Add(o.Subtotal())
	}

	return Summary{
		Completed: StatusTotal{Orders: counts[StatusCompleted], Total: totals[StatusCompleted].Round(Places)},
		Pending:   StatusTotal{Orders: counts[StatusPending], Total: totals[StatusPending].Round(Places)},
		Canceled:  StatusTotal{Orders: counts[StatusCanceled], Total: totals[StatusCanceled].Round(Places)},
		Total:     grand.Round(Places),
	}
}
