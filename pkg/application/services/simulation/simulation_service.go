package simulation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/vsinha/allocator/pkg/application/dto"
	"github.com/vsinha/allocator/pkg/application/services/ordersource"
	"github.com/vsinha/allocator/pkg/domain/repositories"
	"github.com/vsinha/allocator/pkg/infrastructure/events"
)

// ErrOrderLimitReached is returned when MaxOrders orders were processed and
// stock is still on hand.
var ErrOrderLimitReached = errors.New("order limit reached before inventory was exhausted")

// Config holds limits for a simulation run
type Config struct {
	MaxOrders int // 0 means no limit
}

// Service drives orders through the ledger until on-hand stock runs out
type Service struct {
	config     Config
	ledger     repositories.InventoryLedger
	source     ordersource.OrderSource
	eventStore events.EventStore
	logger     zerolog.Logger
}

// NewService creates a simulation service. eventStore may be nil.
func NewService(
	config Config,
	ledger repositories.InventoryLedger,
	source ordersource.OrderSource,
	eventStore events.EventStore,
	logger zerolog.Logger,
) *Service {
	return &Service{
		config:     config,
		ledger:     ledger,
		source:     source,
		eventStore: eventStore,
		logger:     logger,
	}
}

// Run allocates orders until the ledger's on-hand total reaches zero. The
// order that empties the ledger is included in the result. A finite source
// that runs dry ends the run early with SourceExhausted set.
func (s *Service) Run(ctx context.Context) (*dto.SimulationResult, error) {
	start := time.Now()
	result := &dto.SimulationResult{RunID: uuid.NewString()}
	logger := s.logger.With().Str("run_id", result.RunID).Logger()

	logger.Info().Int64("on_hand", int64(s.ledger.TotalOnHand())).Msg("simulation started")

	for s.ledger.TotalOnHand() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "simulation stopped after %d orders", len(result.Results))
		}
		if s.config.MaxOrders > 0 && len(result.Results) >= s.config.MaxOrders {
			return nil, errors.Wrapf(ErrOrderLimitReached, "%d orders processed, %d units on hand",
				len(result.Results), s.ledger.TotalOnHand())
		}

		if finite, ok := s.source.(ordersource.FiniteSource); ok && finite.Remaining() == 0 {
			result.SourceExhausted = true
			logger.Warn().
				Int("orders", len(result.Results)).
				Int64("on_hand", int64(s.ledger.TotalOnHand())).
				Msg("order source exhausted before inventory")
			break
		}

		order := s.source.NextOrder()
		allocation, err := s.ledger.Allocate(order)
		if err != nil {
			return nil, errors.Wrapf(err, "allocating order %d", order.Header)
		}

		result.Results = append(result.Results, *allocation)
		result.Totals.Add(*allocation)
		logger.Debug().Str("summary", allocation.String()).Msg("order allocated")

		if s.eventStore != nil {
			streamID := events.OrderStreamID(allocation.Header)
			if err := s.eventStore.AppendEvent(streamID, events.NewOrderAllocated(*allocation)); err != nil {
				logger.Warn().Err(err).Str("stream", streamID).Msg("failed to publish order allocated event")
			}
		}
	}

	result.Final = s.ledger.Snapshot()
	result.Duration = time.Since(start)

	logger.Info().
		Int("orders", len(result.Results)).
		Int64("requested", int64(result.Totals.Requested.Sum())).
		Int64("fulfilled", int64(result.Totals.Fulfilled.Sum())).
		Int64("backordered", int64(result.Totals.Backordered.Sum())).
		Str("fill_rate", result.Totals.FillRate().String()).
		Dur("duration", result.Duration).
		Msg("simulation finished")

	return result, nil
}
