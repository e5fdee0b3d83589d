package memory

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/vsinha/allocator/pkg/domain/entities"
	"github.com/vsinha/allocator/pkg/domain/repositories"
)

// InventoryLedger provides in-memory on-hand and backorder bookkeeping
type InventoryLedger struct {
	mu          sync.Mutex
	onHand      entities.Vector
	backordered entities.Vector
}

// NewInventoryLedger creates a ledger seeded with the given on-hand stock
func NewInventoryLedger(stock entities.Vector) (*InventoryLedger, error) {
	for i, q := range stock {
		if q < 0 {
			return nil, errors.Errorf("starting stock for %s cannot be negative, got %d", entities.Catalog()[i], q)
		}
		if q > entities.MaxQuantity {
			return nil, errors.Errorf("starting stock for %s exceeds limit %d, got %d", entities.Catalog()[i], entities.MaxQuantity, q)
		}
	}
	return &InventoryLedger{onHand: stock}, nil
}

// NewDefaultInventoryLedger creates a ledger seeded with entities.DefaultStock
func NewDefaultInventoryLedger() *InventoryLedger {
	return &InventoryLedger{onHand: entities.DefaultStock()}
}

// Verify interface compliance
var _ repositories.InventoryLedger = (*InventoryLedger)(nil)

// TotalOnHand returns the sum of on-hand quantities
func (l *InventoryLedger) TotalOnHand() entities.Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.onHand.Sum()
}

// OnHand returns the on-hand quantity for a product
func (l *InventoryLedger) OnHand(product entities.ProductID) (entities.Quantity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.onHand.Get(product)
}

// Backordered returns the cumulative backordered quantity for a product
func (l *InventoryLedger) Backordered(product entities.ProductID) (entities.Quantity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.backordered.Get(product)
}

// Snapshot returns a copy of the current ledger state
func (l *InventoryLedger) Snapshot() entities.LedgerSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return entities.LedgerSnapshot{OnHand: l.onHand, Backordered: l.backordered}
}

// Allocate fills each line from on-hand stock and backorders the shortfall.
// An order whose shortfall would push a backorder past entities.MaxQuantity
// is rejected before any line is applied.
func (l *InventoryLedger) Allocate(order entities.Order) (*entities.AllocationResult, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkBackorderLimit(order); err != nil {
		return nil, err
	}

	result := &entities.AllocationResult{Header: order.Header}
	for _, line := range order.Lines {
		// Validate guarantees the product is in the catalog
		idx, _ := entities.ProductIndex(line.Product)
		result.Requested[idx] = line.Quantity

		if line.Quantity <= l.onHand[idx] {
			l.onHand[idx] -= line.Quantity
			result.Fulfilled[idx] = line.Quantity
			continue
		}

		shortfall := line.Quantity - l.onHand[idx]
		result.Fulfilled[idx] = l.onHand[idx]
		result.Backordered[idx] = shortfall
		l.onHand[idx] = 0
		l.backordered[idx] += shortfall
	}

	return result, nil
}

// checkBackorderLimit must be called with l.mu held
func (l *InventoryLedger) checkBackorderLimit(order entities.Order) error {
	for i, line := range order.Lines {
		idx, _ := entities.ProductIndex(line.Product)
		if line.Quantity <= l.onHand[idx] {
			continue
		}
		shortfall := line.Quantity - l.onHand[idx]
		if shortfall > entities.MaxQuantity-l.backordered[idx] {
			return errors.Wrapf(entities.ErrInvalidOrderLine,
				"order %d line %d: backorder for %s would exceed limit %d",
				order.Header, i, line.Product, entities.MaxQuantity)
		}
	}
	return nil
}
