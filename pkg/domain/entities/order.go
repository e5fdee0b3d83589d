package entities

import (
	"github.com/pkg/errors"
)

// OrderLine is a single (product, quantity) request within an order
type OrderLine struct {
	Product  ProductID `json:"product" yaml:"product"`
	Quantity Quantity  `json:"quantity" yaml:"quantity"`
}

// NewOrderLine creates a validated OrderLine
func NewOrderLine(product ProductID, quantity Quantity) (*OrderLine, error) {
	line := OrderLine{Product: product, Quantity: quantity}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return &line, nil
}

// Validate checks the product against the catalog and requires a quantity in
// [1, MaxQuantity]
func (l OrderLine) Validate() error {
	if !l.Product.Valid() {
		return errors.Wrapf(ErrUnknownProduct, "product %q", string(l.Product))
	}
	if l.Quantity <= 0 {
		return errors.Wrapf(ErrInvalidOrderLine, "quantity must be positive, got %d", l.Quantity)
	}
	if l.Quantity > MaxQuantity {
		return errors.Wrapf(ErrInvalidOrderLine, "quantity %d exceeds limit %d", l.Quantity, MaxQuantity)
	}
	return nil
}

// Order is a customer order identified by a sequence number
type Order struct {
	Header int         `json:"header" yaml:"header"`
	Lines  []OrderLine `json:"lines" yaml:"lines"`
}

// Validate checks every line and rejects orders naming a product more than once.
// A failing order must not be partially allocated, so callers validate before
// touching any ledger state.
func (o Order) Validate() error {
	var seen [NumProducts]bool
	for i, line := range o.Lines {
		if err := line.Validate(); err != nil {
			return errors.Wrapf(err, "order %d line %d", o.Header, i)
		}
		idx, _ := ProductIndex(line.Product)
		if seen[idx] {
			return errors.Wrapf(ErrDuplicateProduct, "order %d line %d: product %s", o.Header, i, line.Product)
		}
		seen[idx] = true
	}
	return nil
}

// TotalQuantity returns the sum of requested quantities across all lines
func (o Order) TotalQuantity() Quantity {
	var total Quantity
	for _, line := range o.Lines {
		total += line.Quantity
	}
	return total
}
