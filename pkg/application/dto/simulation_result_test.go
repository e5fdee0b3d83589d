package dto

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vsinha/allocator/pkg/domain/entities"
)

func TestTotals_FillRate(t *testing.T) {
	var totals Totals
	totals.Add(entities.AllocationResult{
		Requested:   entities.Vector{3, 0, 0, 0, 0},
		Fulfilled:   entities.Vector{3, 0, 0, 0, 0},
		Backordered: entities.Vector{0, 0, 0, 0, 0},
	})
	totals.Add(entities.AllocationResult{
		Requested:   entities.Vector{0, 0, 0, 0, 3},
		Fulfilled:   entities.Vector{0, 0, 0, 0, 1},
		Backordered: entities.Vector{0, 0, 0, 0, 2},
	})

	if totals.Requested != (entities.Vector{3, 0, 0, 0, 3}) {
		t.Errorf("Expected requested totals {3 0 0 0 3}, got %v", totals.Requested)
	}

	testCases := []struct {
		name     string
		got      decimal.Decimal
		expected string
	}{
		{"overall", totals.FillRate(), "0.6667"},
		{"product A", totals.ProductFillRate(0), "1"},
		{"product B never requested", totals.ProductFillRate(1), "0"},
		{"product E", totals.ProductFillRate(4), "0.3333"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.got.Equal(decimal.RequireFromString(tc.expected)) {
				t.Errorf("Expected fill rate %s, got %s", tc.expected, tc.got.String())
			}
		})
	}
}

func TestSimulationResult_Summaries(t *testing.T) {
	result := &SimulationResult{Results: []entities.AllocationResult{
		{Header: 0, Requested: entities.Vector{1, 0, 0, 0, 0}, Fulfilled: entities.Vector{1, 0, 0, 0, 0}},
		{Header: 1, Requested: entities.Vector{0, 2, 0, 0, 0}, Backordered: entities.Vector{0, 2, 0, 0, 0}},
	}}

	expected := []string{
		"0: 1,0,0,0,0::1,0,0,0,0::0,0,0,0,0",
		"1: 0,2,0,0,0::0,0,0,0,0::0,2,0,0,0",
	}
	got := result.Summaries()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d summaries, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected '%s', got '%s'", expected[i], got[i])
		}
	}
}
