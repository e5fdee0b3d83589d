package events

import (
	"fmt"

	"github.com/vsinha/allocator/pkg/domain/entities"
)

const (
	OrderAllocatedEvent = "order.allocated"
)

// OrderAllocated records how one order was split between stock and backorder
type OrderAllocated struct {
	Result entities.AllocationResult `json:"result"`
}

// OrderStreamID returns the stream an order's events are appended to
func OrderStreamID(header int) string {
	return fmt.Sprintf("order-%d", header)
}

// NewOrderAllocated wraps an allocation result in an event
func NewOrderAllocated(result entities.AllocationResult) Event {
	return NewEvent(OrderAllocatedEvent, OrderStreamID(result.Header), OrderAllocated{Result: result})
}
