package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/allocator/pkg/infrastructure/config"
)

// RootOptions holds the flags of the allocator command
type RootOptions struct {
	ConfigFile  string
	Seed        int64
	Format      string
	LogLevel    string
	MetricsFile string
	OrdersFile  string
	MaxOrders   int
	Summary     bool
}

// NewRootCommand creates the allocator command. Run without flags it
// simulates against the default stock and prints one summary per order.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "allocator",
		Short: "Simulate inventory allocation with backorders",
		Long: `Simulate allocation of a fixed five-product inventory against randomly
generated orders until on-hand stock is exhausted.

Each order prints as "<header>: <requested>::<fulfilled>::<backordered>",
where each part lists quantities for products A through E.

Example:
  allocator
  allocator --seed 42 --summary
  allocator --config allocator.yaml --format json
  allocator --orders orders.csv --format csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return NewSimulateCommand(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr()).Execute(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "path to YAML config file")
	cmd.Flags().Int64Var(&opts.Seed, "seed", defaults.Seed, "random seed for order generation (0 = time based)")
	cmd.Flags().StringVar(&opts.Format, "format", defaults.Format, "output format (text|json|yaml|csv)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", defaults.LogLevel, "log level written to stderr")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	cmd.Flags().StringVar(&opts.OrdersFile, "orders", "", "replay orders from a CSV file (header,product,quantity)")
	cmd.Flags().IntVar(&opts.MaxOrders, "max-orders", defaults.MaxOrders, "stop with an error after this many orders (0 = no limit)")
	cmd.Flags().BoolVar(&opts.Summary, "summary", false, "print per-product totals to stderr")

	return cmd
}

// resolveConfig loads the config file, if any, and applies explicitly set flags on top
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}
	if flags.Changed("format") {
		cfg.Format = opts.Format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.MetricsFile
	}
	if flags.Changed("orders") {
		cfg.OrdersFile = opts.OrdersFile
	}
	if flags.Changed("max-orders") {
		cfg.MaxOrders = opts.MaxOrders
	}
	if flags.Changed("summary") {
		cfg.Summary = opts.Summary
	}
	return cfg, nil
}
