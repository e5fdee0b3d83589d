package ordersource

import "github.com/vsinha/allocator/pkg/domain/entities"

// ScriptedOrderSource replays a fixed list of orders. Once the list is
// exhausted it keeps producing empty orders with increasing headers.
type ScriptedOrderSource struct {
	orders []entities.Order
	next   int
}

// NewScriptedOrderSource creates a source that replays the given orders
func NewScriptedOrderSource(orders []entities.Order) *ScriptedOrderSource {
	return &ScriptedOrderSource{orders: orders}
}

var _ FiniteSource = (*ScriptedOrderSource)(nil)

// Remaining returns how many scripted orders have not been drawn yet
func (s *ScriptedOrderSource) Remaining() int {
	if s.next >= len(s.orders) {
		return 0
	}
	return len(s.orders) - s.next
}

// NextOrder returns the next scripted order
func (s *ScriptedOrderSource) NextOrder() entities.Order {
	defer func() { s.next++ }()
	if s.next < len(s.orders) {
		return s.orders[s.next]
	}
	return entities.Order{Header: s.next}
}
