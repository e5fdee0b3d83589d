package commands

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/vsinha/allocator/pkg/application/services/ordersource"
	"github.com/vsinha/allocator/pkg/application/services/simulation"
	"github.com/vsinha/allocator/pkg/domain/entities"
	"github.com/vsinha/allocator/pkg/infrastructure/config"
	"github.com/vsinha/allocator/pkg/infrastructure/events"
	"github.com/vsinha/allocator/pkg/infrastructure/logging"
	"github.com/vsinha/allocator/pkg/infrastructure/metrics"
	"github.com/vsinha/allocator/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/allocator/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/allocator/pkg/interfaces/cli/output"
)

// SimulateCommand runs the allocation simulation and prints order summaries
type SimulateCommand struct {
	config config.Config
	stdout io.Writer
	stderr io.Writer
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(cfg config.Config, stdout, stderr io.Writer) *SimulateCommand {
	return &SimulateCommand{
		config: cfg,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute runs the simulation. Summaries are collected in full and written
// only after the ledger is exhausted.
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if err := c.config.Validate(); err != nil {
		return errors.Wrap(err, "validation error")
	}

	logger, err := logging.New(c.stderr, c.config.LogLevel)
	if err != nil {
		return err
	}

	source, err := c.orderSource()
	if err != nil {
		return err
	}

	eventStore := events.NewInMemoryEventStore()
	recorder := metrics.NewRecorder()
	if err := eventStore.Subscribe([]string{events.OrderAllocatedEvent}, recorder); err != nil {
		return errors.Wrap(err, "failed to subscribe metrics recorder")
	}

	service := simulation.NewService(
		simulation.Config{MaxOrders: c.config.MaxOrders},
		memory.NewDefaultInventoryLedger(),
		source,
		eventStore,
		logger,
	)

	result, err := service.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "simulation failed")
	}

	if err := output.Generate(result, output.Config{Format: c.config.Format, Out: c.stdout}); err != nil {
		return err
	}

	if c.config.Summary {
		if err := output.WriteSummary(result, c.stderr); err != nil {
			return err
		}
	}

	if c.config.MetricsFile != "" {
		if err := recorder.WriteTextfile(c.config.MetricsFile); err != nil {
			return err
		}
		logger.Info().Str("path", c.config.MetricsFile).Msg("metrics written")
	}

	return nil
}

// orderSource replays the configured orders file, or generates random orders
// when none is set
func (c *SimulateCommand) orderSource() (ordersource.OrderSource, error) {
	if c.config.OrdersFile != "" {
		orders, err := csv.NewLoader().LoadOrders(c.config.OrdersFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load orders")
		}
		return ordersource.NewScriptedOrderSource(orders), nil
	}

	source, err := ordersource.NewRandomOrderSource(ordersource.Config{
		MinQuantity: entities.Quantity(c.config.MinQuantity),
		MaxQuantity: entities.Quantity(c.config.MaxQuantity),
		Seed:        c.config.Seed,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create order source")
	}
	return source, nil
}
