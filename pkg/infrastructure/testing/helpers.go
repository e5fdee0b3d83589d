package testing

import (
	"github.com/vsinha/allocator/pkg/application/services/ordersource"
	"github.com/vsinha/allocator/pkg/domain/entities"
	"github.com/vsinha/allocator/pkg/infrastructure/repositories/memory"
)

// ScriptedStock is the small ledger used by the scripted scenario
var ScriptedStock = entities.Vector{3, 2, 1, 1, 3}

// ScriptedOrders returns five orders against ScriptedStock. The fourth order
// empties the ledger, so the fifth is never drawn.
func ScriptedOrders() []entities.Order {
	return []entities.Order{
		{Header: 0, Lines: []entities.OrderLine{{Product: "A", Quantity: 2}, {Product: "C", Quantity: 1}}},
		{Header: 1, Lines: []entities.OrderLine{{Product: "A", Quantity: 3}, {Product: "B", Quantity: 1}, {Product: "E", Quantity: 2}}},
		{Header: 2, Lines: []entities.OrderLine{{Product: "C", Quantity: 4}, {Product: "D", Quantity: 1}}},
		{Header: 3, Lines: []entities.OrderLine{{Product: "B", Quantity: 5}, {Product: "D", Quantity: 2}, {Product: "E", Quantity: 1}}},
		{Header: 4, Lines: []entities.OrderLine{{Product: "A", Quantity: 1}}},
	}
}

// BuildScriptedScenario builds the scripted ledger and a source replaying ScriptedOrders
func BuildScriptedScenario() (*memory.InventoryLedger, *ordersource.ScriptedOrderSource) {
	ledger, err := memory.NewInventoryLedger(ScriptedStock)
	if err != nil {
		panic(err)
	}
	return ledger, ordersource.NewScriptedOrderSource(ScriptedOrders())
}

// BuildDefaultScenario builds a ledger with the default stock and a seeded
// random source drawing 1 to 5 units per line
func BuildDefaultScenario(seed int64) (*memory.InventoryLedger, *ordersource.RandomOrderSource) {
	config := ordersource.DefaultConfig()
	config.Seed = seed
	source, err := ordersource.NewRandomOrderSource(config)
	if err != nil {
		panic(err)
	}
	return memory.NewDefaultInventoryLedger(), source
}

// BuildLargeScenario scales the default stock by factor and draws up to
// maxQuantity units per line, for benchmarks
func BuildLargeScenario(factor entities.Quantity, maxQuantity entities.Quantity, seed int64) (*memory.InventoryLedger, *ordersource.RandomOrderSource) {
	var stock entities.Vector
	for i, q := range entities.DefaultStock() {
		stock[i] = q * factor
	}
	ledger, err := memory.NewInventoryLedger(stock)
	if err != nil {
		panic(err)
	}
	source, err := ordersource.NewRandomOrderSource(ordersource.Config{
		MinQuantity: 1,
		MaxQuantity: maxQuantity,
		Seed:        seed,
	})
	if err != nil {
		panic(err)
	}
	return ledger, source
}
