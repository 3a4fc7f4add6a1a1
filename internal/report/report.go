package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"salesreport/internal/catalogue"
	"salesreport/internal/sales"
)

// Columns holds the report column widths in characters.
type Columns struct {
	Product  int
	Quantity int
	Cost     int
}

// DefaultColumns returns the standard 50/10/20 report layout.
func DefaultColumns() Columns {
	return Columns{Product: 50, Quantity: 10, Cost: 20}
}

// Writer streams the per-product cost breakdown to a sink. It performs no
// file I/O of its own.
type Writer struct {
	out  io.Writer
	cols Columns
}

// NewWriter returns a Writer bound to the sink with the given column layout.
// Non-positive widths fall back to the defaults.
func NewWriter(out io.Writer, cols Columns) *Writer {
	def := DefaultColumns()
	if cols.Product <= 0 {
		cols.Product = def.Product
	}
	if cols.Quantity <= 0 {
		cols.Quantity = def.Quantity
	}
	if cols.Cost <= 0 {
		cols.Cost = def.Cost
	}
	return &Writer{out: out, cols: cols}
}

// WriteBreakdown emits the report header and one line per sold product,
// returning the grand total. Products absent from the price list produce an
// error line and contribute nothing.
func (w *Writer) WriteBreakdown(prices *catalogue.PriceList, sold *sales.Aggregate) float64 {
	fmt.Fprintf(w.out, "\n%-*s %*s %*s\n", w.cols.Product, "PRODUCT", w.cols.Quantity, "QUANTITY", w.cols.Cost, "COST")

	var total float64
	for _, product := range sold.Products() {
		quantity := sold.Quantity(product)
		price, ok := prices.Price(product)
		if !ok {
			fmt.Fprintf(w.out, "Error: Product '%s' not found in the price catalogue.\n", product)
			continue
		}
		cost := price * quantity
		total += cost
		fmt.Fprintf(w.out, "%-*s %*s %*.2f\n", w.cols.Product, product, w.cols.Quantity, formatNumber(quantity), w.cols.Cost, cost)
	}
	return total
}

// WriteTotal emits the grand total line beneath the breakdown. The label is
// right-justified across the product and quantity columns.
func (w *Writer) WriteTotal(total float64) {
	labelWidth := w.cols.Product + w.cols.Quantity + 1
	fmt.Fprintf(w.out, "\n%*s %*.2f\n", labelWidth, "TOTAL COST OF ALL SALES", w.cols.Cost, RoundCents(total))
}

// RoundCents rounds a monetary amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// formatNumber renders a quantity with minimal decimals: whole values print
// without a fraction, fractional values keep only the digits they need.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
