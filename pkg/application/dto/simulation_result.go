package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/allocator/pkg/domain/entities"
)

// SimulationResult contains the complete output of a simulation run
type SimulationResult struct {
	RunID    string
	Results  []entities.AllocationResult
	Final    entities.LedgerSnapshot
	Totals   Totals
	Duration time.Duration

	// SourceExhausted is set when a finite order source ran out before the
	// ledger was empty.
	SourceExhausted bool
}

// Totals sums the per-order vectors over a run
type Totals struct {
	Requested   entities.Vector
	Fulfilled   entities.Vector
	Backordered entities.Vector
}

// Add accumulates one allocation result
func (t *Totals) Add(result entities.AllocationResult) {
	t.Requested = t.Requested.Add(result.Requested)
	t.Fulfilled = t.Fulfilled.Add(result.Fulfilled)
	t.Backordered = t.Backordered.Add(result.Backordered)
}

// FillRate returns fulfilled over requested units, rounded to 4 places
func (t Totals) FillRate() decimal.Decimal {
	return ratio(t.Fulfilled.Sum(), t.Requested.Sum())
}

// ProductFillRate returns the fill rate for the product at canonical position idx
func (t Totals) ProductFillRate(idx int) decimal.Decimal {
	return ratio(t.Fulfilled[idx], t.Requested[idx])
}

func ratio(num, den entities.Quantity) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(num)).Div(decimal.NewFromInt(int64(den))).Round(4)
}

// Summaries renders each result in processing order
func (r *SimulationResult) Summaries() []string {
	lines := make([]string, len(r.Results))
	for i, result := range r.Results {
		lines[i] = result.String()
	}
	return lines
}
