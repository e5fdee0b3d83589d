package repositories

import "github.com/vsinha/allocator/pkg/domain/entities"

// InventoryLedger tracks on-hand and backordered quantities per product
type InventoryLedger interface {
	// TotalOnHand returns the sum of on-hand quantities across the catalog.
	TotalOnHand() entities.Quantity
	OnHand(product entities.ProductID) (entities.Quantity, error)
	Backordered(product entities.ProductID) (entities.Quantity, error)
	Snapshot() entities.LedgerSnapshot

	// Allocate splits each order line between on-hand stock and backorder,
	// mutating the ledger. Invalid orders are rejected without any mutation.
	Allocate(order entities.Order) (*entities.AllocationResult, error)
}
