package entities

import "github.com/pkg/errors"

var (
	// ErrUnknownProduct is returned for product identifiers outside the catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrInvalidOrderLine is returned for order lines that cannot be allocated,
	// such as a non-positive requested quantity.
	ErrInvalidOrderLine = errors.New("invalid order line")

	// ErrDuplicateProduct is returned when an order names the same product twice.
	// It wraps ErrInvalidOrderLine.
	ErrDuplicateProduct = errors.Wrap(ErrInvalidOrderLine, "duplicate product in order")
)
