package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/vsinha/allocator/pkg/application/dto"
	"github.com/vsinha/allocator/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	Out    io.Writer
}

// Generate writes the simulation result in the configured format
func Generate(result *dto.SimulationResult, config Config) error {
	switch config.Format {
	case "text", "":
		return generateTextOutput(result, config.Out)
	case "json":
		return generateJSONOutput(result, config.Out)
	case "yaml":
		return generateYAMLOutput(result, config.Out)
	case "csv":
		return generateCSVOutput(result, config.Out)
	default:
		return errors.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput prints one summary line per processed order
func generateTextOutput(result *dto.SimulationResult, w io.Writer) error {
	for _, line := range result.Summaries() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "failed to write summary")
		}
	}
	return nil
}

// Report is the structured form used by the json and yaml formats
type Report struct {
	RunID    string        `json:"run_id" yaml:"run_id"`
	Orders   int           `json:"orders" yaml:"orders"`
	FillRate string        `json:"fill_rate" yaml:"fill_rate"`
	Totals   ProductTotals `json:"totals" yaml:"totals"`
	Final    ProductLedger `json:"final" yaml:"final"`
	Results  []OrderReport `json:"results" yaml:"results"`

	SourceExhausted bool `json:"source_exhausted,omitempty" yaml:"source_exhausted,omitempty"`
}

// ProductTotals holds run totals keyed by product
type ProductTotals struct {
	Requested   map[entities.ProductID]entities.Quantity `json:"requested" yaml:"requested"`
	Fulfilled   map[entities.ProductID]entities.Quantity `json:"fulfilled" yaml:"fulfilled"`
	Backordered map[entities.ProductID]entities.Quantity `json:"backordered" yaml:"backordered"`
	FillRate    map[entities.ProductID]string            `json:"fill_rate" yaml:"fill_rate"`
}

// ProductLedger holds the ledger state keyed by product
type ProductLedger struct {
	OnHand      map[entities.ProductID]entities.Quantity `json:"on_hand" yaml:"on_hand"`
	Backordered map[entities.ProductID]entities.Quantity `json:"backordered" yaml:"backordered"`
}

// OrderReport is one processed order
type OrderReport struct {
	Header      int             `json:"header" yaml:"header"`
	Summary     string          `json:"summary" yaml:"summary"`
	Requested   entities.Vector `json:"requested" yaml:"requested,flow"`
	Fulfilled   entities.Vector `json:"fulfilled" yaml:"fulfilled,flow"`
	Backordered entities.Vector `json:"backordered" yaml:"backordered,flow"`
}

// NewReport converts a simulation result into its structured report
func NewReport(result *dto.SimulationResult) Report {
	report := Report{
		RunID:    result.RunID,
		Orders:   len(result.Results),
		FillRate: result.Totals.FillRate().String(),
		Totals: ProductTotals{
			Requested:   byProduct(result.Totals.Requested),
			Fulfilled:   byProduct(result.Totals.Fulfilled),
			Backordered: byProduct(result.Totals.Backordered),
			FillRate:    make(map[entities.ProductID]string, entities.NumProducts),
		},
		Final: ProductLedger{
			OnHand:      byProduct(result.Final.OnHand),
			Backordered: byProduct(result.Final.Backordered),
		},
		Results:         make([]OrderReport, 0, len(result.Results)),
		SourceExhausted: result.SourceExhausted,
	}

	for i, product := range entities.Catalog() {
		report.Totals.FillRate[product] = result.Totals.ProductFillRate(i).String()
	}

	for _, r := range result.Results {
		report.Results = append(report.Results, OrderReport{
			Header:      r.Header,
			Summary:     r.String(),
			Requested:   r.Requested,
			Fulfilled:   r.Fulfilled,
			Backordered: r.Backordered,
		})
	}
	return report
}

func byProduct(v entities.Vector) map[entities.ProductID]entities.Quantity {
	m := make(map[entities.ProductID]entities.Quantity, entities.NumProducts)
	for i, product := range entities.Catalog() {
		m[product] = v[i]
	}
	return m
}

// generateJSONOutput writes the report as indented JSON
func generateJSONOutput(result *dto.SimulationResult, w io.Writer) error {
	jsonData, err := json.MarshalIndent(NewReport(result), "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return errors.Wrap(err, "failed to write JSON")
	}
	return nil
}

// generateYAMLOutput writes the report as YAML
func generateYAMLOutput(result *dto.SimulationResult, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewReport(result)); err != nil {
		return errors.Wrap(err, "failed to encode YAML")
	}
	return errors.Wrap(encoder.Close(), "failed to flush YAML")
}

// generateCSVOutput writes one row per requested product per order
func generateCSVOutput(result *dto.SimulationResult, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"header", "product", "requested", "fulfilled", "backordered"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	catalog := entities.Catalog()
	for _, r := range result.Results {
		for i, product := range catalog {
			if r.Requested[i] == 0 {
				continue
			}
			record := []string{
				strconv.Itoa(r.Header),
				string(product),
				strconv.FormatInt(int64(r.Requested[i]), 10),
				strconv.FormatInt(int64(r.Fulfilled[i]), 10),
				strconv.FormatInt(int64(r.Backordered[i]), 10),
			}
			if err := writer.Write(record); err != nil {
				return errors.Wrap(err, "failed to write CSV record")
			}
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to flush CSV")
}

// WriteSummary prints a per-product totals table
func WriteSummary(result *dto.SimulationResult, w io.Writer) error {
	var out string
	out += fmt.Sprintf("Orders Processed: %d\n", len(result.Results))
	out += fmt.Sprintf("Fill Rate: %s\n\n", percent(result.Totals.FillRate()))

	out += fmt.Sprintf("%-8s %-10s %-10s %-12s %-10s\n",
		"Product", "Requested", "Fulfilled", "Backordered", "Fill Rate")
	out += fmt.Sprintf("%-8s %-10s %-10s %-12s %-10s\n",
		"--------", "----------", "----------", "------------", "----------")

	for i, product := range entities.Catalog() {
		out += fmt.Sprintf("%-8s %-10d %-10d %-12d %-10s\n",
			product,
			result.Totals.Requested[i],
			result.Totals.Fulfilled[i],
			result.Totals.Backordered[i],
			percent(result.Totals.ProductFillRate(i)))
	}

	_, err := io.WriteString(w, out)
	return errors.Wrap(err, "failed to write summary")
}

func percent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
