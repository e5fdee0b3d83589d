package ordersource

import (
	"math/rand"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/vsinha/allocator/pkg/domain/entities"
)

// OrderSource produces orders for the allocation loop
type OrderSource interface {
	NextOrder() entities.Order
}

// FiniteSource is an OrderSource that can run out of orders
type FiniteSource interface {
	OrderSource
	Remaining() int
}

// Config holds configuration for random order generation
type Config struct {
	MinQuantity entities.Quantity // Smallest quantity per line (inclusive)
	MaxQuantity entities.Quantity // Largest quantity per line (inclusive)
	Seed        int64             // Random seed; 0 picks a time-based seed
}

// DefaultConfig returns quantities in [1, 5] with a time-based seed
func DefaultConfig() Config {
	return Config{MinQuantity: 1, MaxQuantity: 5}
}

// RandomOrderSource generates orders with distinct random products and quantities
type RandomOrderSource struct {
	config  Config
	rand    *rand.Rand
	nextID  int
	catalog []entities.ProductID
}

// NewRandomOrderSource creates a new random order source
func NewRandomOrderSource(config Config) (*RandomOrderSource, error) {
	if config.MinQuantity < 1 {
		return nil, errors.Errorf("minimum quantity must be at least 1, got %d", config.MinQuantity)
	}
	if config.MaxQuantity < config.MinQuantity {
		return nil, errors.Errorf("maximum quantity %d is below minimum %d", config.MaxQuantity, config.MinQuantity)
	}
	if config.MaxQuantity > entities.MaxQuantity {
		return nil, errors.Errorf("maximum quantity %d exceeds limit %d", config.MaxQuantity, entities.MaxQuantity)
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RandomOrderSource{
		config:  config,
		rand:    rand.New(rand.NewSource(seed)),
		catalog: entities.Catalog(),
	}, nil
}

// Verify interface compliance
var _ OrderSource = (*RandomOrderSource)(nil)

// NextOrder returns an order with 1 to 5 lines, one per distinct product,
// sorted by product identifier. Headers start at 0 and increase by one.
func (s *RandomOrderSource) NextOrder() entities.Order {
	count := 1 + s.rand.Intn(len(s.catalog))
	picks := s.rand.Perm(len(s.catalog))[:count]
	sort.Ints(picks)

	span := int64(s.config.MaxQuantity - s.config.MinQuantity + 1)
	order := entities.Order{
		Header: s.nextID,
		Lines:  make([]entities.OrderLine, 0, count),
	}
	for _, idx := range picks {
		order.Lines = append(order.Lines, entities.OrderLine{
			Product:  s.catalog[idx],
			Quantity: s.config.MinQuantity + entities.Quantity(s.rand.Int63n(span)),
		})
	}

	s.nextID++
	return order
}
