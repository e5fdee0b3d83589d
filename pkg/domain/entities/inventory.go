package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector holds one quantity per product, indexed by canonical product position
type Vector [NumProducts]Quantity

// Get returns the value recorded for a product
func (v Vector) Get(p ProductID) (Quantity, error) {
	idx, err := ProductIndex(p)
	if err != nil {
		return 0, err
	}
	return v[idx], nil
}

// Sum returns the total across all products
func (v Vector) Sum() Quantity {
	var total Quantity
	for _, q := range v {
		total += q
	}
	return total
}

// Add returns the element-wise sum of two vectors
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// CSV renders the vector as comma-separated integers in canonical order
func (v Vector) CSV() string {
	parts := make([]string, NumProducts)
	for i, q := range v {
		parts[i] = strconv.FormatInt(int64(q), 10)
	}
	return strings.Join(parts, ",")
}

// DefaultStock returns the starting on-hand quantities: 150/150/100/100/200
func DefaultStock() Vector {
	return Vector{150, 150, 100, 100, 200}
}

// AllocationResult represents how one order was split between stock and backorder
type AllocationResult struct {
	Header      int    `json:"header" yaml:"header"`
	Requested   Vector `json:"requested" yaml:"requested"`
	Fulfilled   Vector `json:"fulfilled" yaml:"fulfilled"`
	Backordered Vector `json:"backordered" yaml:"backordered"`
}

// String renders the summary as "<header>: <requested>::<fulfilled>::<backordered>"
func (r AllocationResult) String() string {
	return fmt.Sprintf("%d: %s::%s::%s", r.Header, r.Requested.CSV(), r.Fulfilled.CSV(), r.Backordered.CSV())
}

// LedgerSnapshot is a point-in-time copy of ledger state
type LedgerSnapshot struct {
	OnHand      Vector `json:"on_hand" yaml:"on_hand"`
	Backordered Vector `json:"backordered" yaml:"backordered"`
}
