package csv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vsinha/allocator/pkg/domain/entities"
)

// Loader handles loading orders from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var orderHeader = []string{"header", "product", "quantity"}

// LoadOrders loads orders from a CSV file with columns header,product,quantity.
// Consecutive rows sharing a header form one order.
func (l *Loader) LoadOrders(filename string) ([]entities.Order, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open orders file %s", filename)
	}
	defer file.Close()

	return l.ReadOrders(file)
}

// ReadOrders parses orders from CSV data
func (l *Loader) ReadOrders(r io.Reader) ([]entities.Order, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read orders CSV")
	}

	if len(records) < 2 {
		return nil, errors.New("orders CSV must have header and at least one data row")
	}

	if !validateHeader(records[0], orderHeader) {
		return nil, errors.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", orderHeader, records[0])
	}

	var orders []entities.Order
	for i, record := range records[1:] {
		row := i + 2
		if len(record) != len(orderHeader) {
			return nil, errors.Errorf("orders CSV row %d: expected %d columns, got %d", row, len(orderHeader), len(record))
		}

		header, line, err := parseOrderLine(record)
		if err != nil {
			return nil, errors.Wrapf(err, "orders CSV row %d", row)
		}

		if n := len(orders); n > 0 {
			previous := orders[n-1].Header
			if previous == header {
				orders[n-1].Lines = append(orders[n-1].Lines, line)
				continue
			}
			if header < previous {
				return nil, errors.Errorf("orders CSV row %d: header %d follows %d, headers must increase", row, header, previous)
			}
		}
		orders = append(orders, entities.Order{Header: header, Lines: []entities.OrderLine{line}})
	}

	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, errors.Wrap(err, "orders CSV")
		}
	}

	return orders, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseOrderLine(record []string) (int, entities.OrderLine, error) {
	header, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return 0, entities.OrderLine{}, errors.Errorf("invalid header: %s", record[0])
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return 0, entities.OrderLine{}, errors.Errorf("invalid quantity: %s", record[2])
	}

	return header, entities.OrderLine{
		Product:  entities.ProductID(strings.TrimSpace(record[1])),
		Quantity: entities.Quantity(quantity),
	}, nil
}
