package sales

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// Aggregate accumulates total quantity sold per product. It remembers the
// order in which products were first seen so the report iterates
// deterministically.
type Aggregate struct {
	quantities map[string]float64
	order      []string
}

// NewAggregate returns an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{quantities: map[string]float64{}}
}

// Add accumulates quantity onto the running total for the product.
func (a *Aggregate) Add(product string, quantity float64) {
	if _, ok := a.quantities[product]; !ok {
		a.order = append(a.order, product)
	}
	a.quantities[product] += quantity
}

// Quantity returns the total quantity recorded for the product.
func (a *Aggregate) Quantity(product string) float64 {
	return a.quantities[product]
}

// Products lists the products in first-seen order.
func (a *Aggregate) Products() []string {
	return a.order
}

// Len reports the number of distinct products sold.
func (a *Aggregate) Len() int {
	return len(a.quantities)
}

// record is the wire shape of one sale. Pointer fields distinguish absent or
// null values from zero values.
type record struct {
	Product  *string  `json:"Product"`
	Quantity *float64 `json:"Quantity"`
}

// Load reads the sales record at path and returns a best-effort aggregate.
// File-level failures are logged and yield an empty aggregate; an invalid
// entry is logged and skipped. Quantities for repeated products accumulate.
func Load(path string, logger *slog.Logger) *Aggregate {
	agg := NewAggregate()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error("sales record file not found", slog.String("path", path))
		} else {
			logger.Error("failed to read sales record", slog.String("path", path), slog.String("error", err.Error()))
		}
		return agg
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("invalid JSON in sales record", slog.String("path", path), slog.String("error", err.Error()))
		return agg
	}

	for i, raw := range entries {
		var rec record
		if err := json.Unmarshal(raw, &rec); err != nil || rec.Product == nil || *rec.Product == "" || rec.Quantity == nil {
			logger.Error("invalid item in the sales record", slog.String("path", path), slog.Int("index", i))
			continue
		}
		agg.Add(*rec.Product, *rec.Quantity)
	}

	return agg
}
