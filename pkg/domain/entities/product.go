package entities

import (
	"math"

	"github.com/pkg/errors"
)

// ProductID represents a unique product identifier
type ProductID string

// Quantity represents an integer quantity value for discrete units
type Quantity int64

// The fixed product catalog, declared in canonical (lexicographic) order.
const (
	ProductA ProductID = "A"
	ProductB ProductID = "B"
	ProductC ProductID = "C"
	ProductD ProductID = "D"
	ProductE ProductID = "E"
)

// NumProducts is the size of the product catalog
const NumProducts = 5

// MaxQuantity bounds any single line, starting stock and cumulative backorder
// per product. Requested totals stay below 2*MaxQuantity per product, so sums
// across the catalog cannot overflow.
const MaxQuantity Quantity = math.MaxInt64 / (2 * NumProducts)

var catalog = [NumProducts]ProductID{ProductA, ProductB, ProductC, ProductD, ProductE}

// Catalog returns the product identifiers in canonical order
func Catalog() []ProductID {
	products := make([]ProductID, NumProducts)
	copy(products, catalog[:])
	return products
}

// ProductIndex returns the canonical position of a product
func ProductIndex(p ProductID) (int, error) {
	switch p {
	case ProductA:
		return 0, nil
	case ProductB:
		return 1, nil
	case ProductC:
		return 2, nil
	case ProductD:
		return 3, nil
	case ProductE:
		return 4, nil
	default:
		return -1, errors.Wrapf(ErrUnknownProduct, "product %q", string(p))
	}
}

// Valid reports whether the product belongs to the catalog
func (p ProductID) Valid() bool {
	_, err := ProductIndex(p)
	return err == nil
}
