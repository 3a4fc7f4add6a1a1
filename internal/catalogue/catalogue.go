package catalogue

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
)

// PriceList resolves unit prices by product identifier.
type PriceList struct {
	prices map[string]float64
}

// NewPriceList builds a price list from an existing price map.
func NewPriceList(prices map[string]float64) *PriceList {
	p := &PriceList{prices: map[string]float64{}}
	for k, v := range prices {
		if k == "" {
			continue
		}
		p.prices[k] = v
	}
	return p
}

// Price returns the unit price for the product and whether it is known.
func (p *PriceList) Price(product string) (float64, bool) {
	if p == nil {
		return 0, false
	}
	price, ok := p.prices[product]
	return price, ok
}

// Len reports the number of known products.
func (p *PriceList) Len() int {
	if p == nil {
		return 0
	}
	return len(p.prices)
}

// item is the wire shape of one catalogue entry. Pointer fields distinguish
// absent or null values from zero values.
type item struct {
	Title *string  `json:"title"`
	Price *float64 `json:"price"`
}

// Load reads the price catalogue at path and returns a best-effort price
// list. Every failure mode is logged and absorbed: a missing or malformed
// file yields an empty list, an invalid entry is skipped. Duplicate titles
// keep the last occurrence.
func Load(path string, logger *slog.Logger) *PriceList {
	prices := map[string]float64{}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Error("price catalogue file not found", slog.String("path", path))
		} else {
			logger.Error("failed to read price catalogue", slog.String("path", path), slog.String("error", err.Error()))
		}
		return &PriceList{prices: prices}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Error("invalid JSON in price catalogue", slog.String("path", path), slog.String("error", err.Error()))
		return &PriceList{prices: prices}
	}

	for i, raw := range entries {
		var it item
		if err := json.Unmarshal(raw, &it); err != nil || it.Title == nil || *it.Title == "" || it.Price == nil {
			logger.Error("invalid item in the price catalogue", slog.String("path", path), slog.Int("index", i))
			continue
		}
		// Last occurrence wins on duplicate titles.
		prices[*it.Title] = *it.Price
	}

	return &PriceList{prices: prices}
}
