package memory

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/vsinha/allocator/pkg/domain/entities"
)

func TestInventoryLedger_DefaultStock(t *testing.T) {
	ledger := NewDefaultInventoryLedger()

	if total := ledger.TotalOnHand(); total != 700 {
		t.Fatalf("Expected total on hand 700, got %d", total)
	}

	snapshot := ledger.Snapshot()
	if snapshot.OnHand != entities.DefaultStock() {
		t.Errorf("Expected on hand %v, got %v", entities.DefaultStock(), snapshot.OnHand)
	}
	if snapshot.Backordered != (entities.Vector{}) {
		t.Errorf("Expected nothing backordered, got %v", snapshot.Backordered)
	}
}

func TestNewInventoryLedger_RejectsNegativeStock(t *testing.T) {
	_, err := NewInventoryLedger(entities.Vector{1, 1, -1, 1, 1})
	if err == nil {
		t.Fatalf("Expected error for negative stock, but got none")
	}
	expected := "starting stock for C cannot be negative, got -1"
	if err.Error() != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestNewInventoryLedger_RejectsStockOverLimit(t *testing.T) {
	_, err := NewInventoryLedger(entities.Vector{1, entities.MaxQuantity + 1, 1, 1, 1})
	if err == nil {
		t.Fatalf("Expected error for stock over limit, but got none")
	}
	if !strings.Contains(err.Error(), "starting stock for B exceeds limit") {
		t.Errorf("Expected limit error, got '%s'", err.Error())
	}
}

func TestInventoryLedger_Allocate(t *testing.T) {
	tests := []struct {
		name                string
		stock               entities.Vector
		order               entities.Order
		expectedSummary     string
		expectedOnHand      entities.Vector
		expectedBackordered entities.Vector
	}{
		{
			name:                "sufficient_stock",
			stock:               entities.DefaultStock(),
			order:               entities.Order{Header: 1, Lines: []entities.OrderLine{{Product: "B", Quantity: 1}, {Product: "C", Quantity: 1}}},
			expectedSummary:     "1: 0,1,1,0,0::0,1,1,0,0::0,0,0,0,0",
			expectedOnHand:      entities.Vector{150, 149, 99, 100, 200},
			expectedBackordered: entities.Vector{},
		},
		{
			name:                "product_already_exhausted",
			stock:               entities.Vector{150, 150, 0, 100, 200},
			order:               entities.Order{Header: 2, Lines: []entities.OrderLine{{Product: "C", Quantity: 3}}},
			expectedSummary:     "2: 0,0,3,0,0::0,0,0,0,0::0,0,3,0,0",
			expectedOnHand:      entities.Vector{150, 150, 0, 100, 200},
			expectedBackordered: entities.Vector{0, 0, 3, 0, 0},
		},
		{
			name:                "partial_fulfillment",
			stock:               entities.Vector{150, 150, 100, 2, 200},
			order:               entities.Order{Header: 3, Lines: []entities.OrderLine{{Product: "D", Quantity: 5}}},
			expectedSummary:     "3: 0,0,0,5,0::0,0,0,2,0::0,0,0,3,0",
			expectedOnHand:      entities.Vector{150, 150, 100, 0, 200},
			expectedBackordered: entities.Vector{0, 0, 0, 3, 0},
		},
		{
			name:                "exact_depletion",
			stock:               entities.Vector{0, 0, 0, 0, 4},
			order:               entities.Order{Header: 4, Lines: []entities.OrderLine{{Product: "E", Quantity: 4}}},
			expectedSummary:     "4: 0,0,0,0,4::0,0,0,0,4::0,0,0,0,0",
			expectedOnHand:      entities.Vector{},
			expectedBackordered: entities.Vector{},
		},
		{
			name:  "mixed_lines",
			stock: entities.Vector{5, 0, 1, 10, 0},
			order: entities.Order{Header: 5, Lines: []entities.OrderLine{
				{Product: "A", Quantity: 5},
				{Product: "B", Quantity: 2},
				{Product: "C", Quantity: 4},
				{Product: "E", Quantity: 1},
			}},
			expectedSummary:     "5: 5,2,4,0,1::5,0,1,0,0::0,2,3,0,1",
			expectedOnHand:      entities.Vector{0, 0, 0, 10, 0},
			expectedBackordered: entities.Vector{0, 2, 3, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger, err := NewInventoryLedger(tt.stock)
			if err != nil {
				t.Fatalf("Failed to create ledger: %v", err)
			}

			result, err := ledger.Allocate(tt.order)
			if err != nil {
				t.Fatalf("Failed to allocate: %v", err)
			}

			if result.String() != tt.expectedSummary {
				t.Errorf("Expected summary '%s', got '%s'", tt.expectedSummary, result.String())
			}

			snapshot := ledger.Snapshot()
			if snapshot.OnHand != tt.expectedOnHand {
				t.Errorf("Expected on hand %v, got %v", tt.expectedOnHand, snapshot.OnHand)
			}
			if snapshot.Backordered != tt.expectedBackordered {
				t.Errorf("Expected backordered %v, got %v", tt.expectedBackordered, snapshot.Backordered)
			}
		})
	}
}

func TestInventoryLedger_BackorderAccumulates(t *testing.T) {
	ledger, err := NewInventoryLedger(entities.Vector{0, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Failed to create ledger: %v", err)
	}

	for header := 0; header < 3; header++ {
		order := entities.Order{Header: header, Lines: []entities.OrderLine{{Product: "C", Quantity: 3}}}
		if _, err := ledger.Allocate(order); err != nil {
			t.Fatalf("Failed to allocate order %d: %v", header, err)
		}
	}

	backordered, err := ledger.Backordered("C")
	if err != nil {
		t.Fatalf("Failed to read backordered: %v", err)
	}
	if backordered != 9 {
		t.Errorf("Expected 9 backordered, got %d", backordered)
	}
}

func TestInventoryLedger_RejectsInvalidOrders(t *testing.T) {
	tests := []struct {
		name      string
		order     entities.Order
		expectErr error
	}{
		{
			name:      "unknown_product",
			order:     entities.Order{Header: 1, Lines: []entities.OrderLine{{Product: "A", Quantity: 1}, {Product: "X", Quantity: 1}}},
			expectErr: entities.ErrUnknownProduct,
		},
		{
			name:      "zero_quantity",
			order:     entities.Order{Header: 2, Lines: []entities.OrderLine{{Product: "A", Quantity: 1}, {Product: "B", Quantity: 0}}},
			expectErr: entities.ErrInvalidOrderLine,
		},
		{
			name:      "negative_quantity",
			order:     entities.Order{Header: 3, Lines: []entities.OrderLine{{Product: "B", Quantity: -4}}},
			expectErr: entities.ErrInvalidOrderLine,
		},
		{
			name:      "repeated_product",
			order:     entities.Order{Header: 4, Lines: []entities.OrderLine{{Product: "D", Quantity: 1}, {Product: "D", Quantity: 1}}},
			expectErr: entities.ErrDuplicateProduct,
		},
		{
			name:      "quantity_over_limit",
			order:     entities.Order{Header: 5, Lines: []entities.OrderLine{{Product: "A", Quantity: 1}, {Product: "B", Quantity: entities.MaxQuantity + 1}}},
			expectErr: entities.ErrInvalidOrderLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewDefaultInventoryLedger()

			result, err := ledger.Allocate(tt.order)
			if err == nil {
				t.Fatalf("Expected error, got result %v", result)
			}
			if !errors.Is(err, tt.expectErr) {
				t.Errorf("Expected error to wrap %v, got %v", tt.expectErr, err)
			}

			// A rejected order leaves the ledger untouched, including earlier valid lines
			snapshot := ledger.Snapshot()
			if snapshot.OnHand != entities.DefaultStock() {
				t.Errorf("Expected on hand unchanged, got %v", snapshot.OnHand)
			}
			if snapshot.Backordered != (entities.Vector{}) {
				t.Errorf("Expected backordered unchanged, got %v", snapshot.Backordered)
			}
		})
	}
}

func TestInventoryLedger_RejectsBackorderOverflow(t *testing.T) {
	ledger, err := NewInventoryLedger(entities.Vector{1, 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("Failed to create ledger: %v", err)
	}

	// fills the B backorder to its limit
	if _, err := ledger.Allocate(entities.Order{Header: 0, Lines: []entities.OrderLine{{Product: "B", Quantity: entities.MaxQuantity}}}); err != nil {
		t.Fatalf("Failed to allocate order 0: %v", err)
	}

	orders := []entities.Order{
		{Header: 1, Lines: []entities.OrderLine{{Product: "B", Quantity: 1}}},
		{Header: 2, Lines: []entities.OrderLine{{Product: "A", Quantity: 1}, {Product: "B", Quantity: entities.MaxQuantity}}},
	}
	for _, order := range orders {
		_, err := ledger.Allocate(order)
		if err == nil {
			t.Fatalf("Expected error for order %d, but got none", order.Header)
		}
		if !errors.Is(err, entities.ErrInvalidOrderLine) {
			t.Errorf("Expected error to wrap %v, got %v", entities.ErrInvalidOrderLine, err)
		}
	}

	// the rejected orders applied nothing, including the A line of order 2
	snapshot := ledger.Snapshot()
	if snapshot.OnHand != (entities.Vector{1, 0, 0, 0, 0}) {
		t.Errorf("Expected on hand unchanged, got %v", snapshot.OnHand)
	}
	if snapshot.Backordered != (entities.Vector{0, entities.MaxQuantity, 0, 0, 0}) {
		t.Errorf("Expected backordered B at limit, got %v", snapshot.Backordered)
	}
	if sum := snapshot.Backordered.Sum(); sum < 0 {
		t.Errorf("Expected non-negative backorder total, got %d", sum)
	}
}

func TestInventoryLedger_UnknownProductLookup(t *testing.T) {
	ledger := NewDefaultInventoryLedger()

	if _, err := ledger.OnHand("Q"); !errors.Is(err, entities.ErrUnknownProduct) {
		t.Errorf("Expected ErrUnknownProduct from OnHand, got %v", err)
	}
	if _, err := ledger.Backordered("Q"); !errors.Is(err, entities.ErrUnknownProduct) {
		t.Errorf("Expected ErrUnknownProduct from Backordered, got %v", err)
	}
}

func TestInventoryLedger_Deterministic(t *testing.T) {
	order := entities.Order{Header: 9, Lines: []entities.OrderLine{{Product: "A", Quantity: 4}, {Product: "E", Quantity: 2}}}

	first, err := NewDefaultInventoryLedger().Allocate(order)
	if err != nil {
		t.Fatalf("Failed to allocate: %v", err)
	}
	second, err := NewDefaultInventoryLedger().Allocate(order)
	if err != nil {
		t.Fatalf("Failed to allocate: %v", err)
	}

	if first.String() != second.String() {
		t.Errorf("Expected identical summaries, got '%s' and '%s'", first.String(), second.String())
	}
}
