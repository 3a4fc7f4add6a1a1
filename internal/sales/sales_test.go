package sales

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAccumulatesQuantities(t *testing.T) {
	path := writeFile(t, `[
		{"Product": "Apple", "Quantity": 10},
		{"Product": "Banana", "Quantity": 4},
		{"Product": "Apple", "Quantity": 5}
	]`)

	agg := Load(path, discardLogger())

	if agg.Len() != 2 {
		t.Fatalf("expected 2 distinct products, got %d", agg.Len())
	}
	if q := agg.Quantity("Apple"); q != 15 {
		t.Fatalf("Apple quantity = %v", q)
	}
	if q := agg.Quantity("Banana"); q != 4 {
		t.Fatalf("Banana quantity = %v", q)
	}
}

func TestLoadPreservesFirstSeenOrder(t *testing.T) {
	path := writeFile(t, `[
		{"Product": "Cherry", "Quantity": 1},
		{"Product": "Apple", "Quantity": 2},
		{"Product": "Cherry", "Quantity": 3},
		{"Product": "Banana", "Quantity": 4}
	]`)

	agg := Load(path, discardLogger())

	want := []string{"Cherry", "Apple", "Banana"}
	got := agg.Products()
	if len(got) != len(want) {
		t.Fatalf("products = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("products[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAddOrderIndependentTotals(t *testing.T) {
	quantities := []float64{3, 1.5, 0, 7, 2.5}

	forward := NewAggregate()
	for _, q := range quantities {
		forward.Add("X", q)
	}
	backward := NewAggregate()
	for i := len(quantities) - 1; i >= 0; i-- {
		backward.Add("X", quantities[i])
	}

	if !almostEqual(forward.Quantity("X"), backward.Quantity("X")) {
		t.Fatalf("totals diverge: %v vs %v", forward.Quantity("X"), backward.Quantity("X"))
	}
	if !almostEqual(forward.Quantity("X"), 14) {
		t.Fatalf("total = %v", forward.Quantity("X"))
	}
}

func TestLoadSkipsInvalidItems(t *testing.T) {
	path := writeFile(t, `[
		{"Product": "Apple", "Quantity": 10},
		{"Product": "NoQuantity"},
		{"Quantity": 3},
		{"Product": "NullQuantity", "Quantity": null},
		{"Product": "", "Quantity": 2},
		{"Product": "BadType", "Quantity": "many"},
		{"Product": "Zero", "Quantity": 0}
	]`)

	agg := Load(path, discardLogger())

	if agg.Len() != 2 {
		t.Fatalf("expected 2 valid products, got %d (%v)", agg.Len(), agg.Products())
	}
	if q := agg.Quantity("Zero"); q != 0 {
		t.Fatalf("zero quantity should be valid, got %v", q)
	}
}

func TestLoadMissingFile(t *testing.T) {
	agg := Load(filepath.Join(t.TempDir(), "nope.json"), discardLogger())

	if agg.Len() != 0 {
		t.Fatalf("expected empty aggregate, got %d entries", agg.Len())
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeFile(t, `[{"Product": "Apple", "Quantity": 10},`)

	agg := Load(path, discardLogger())

	if agg.Len() != 0 {
		t.Fatalf("expected empty aggregate, got %d entries", agg.Len())
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salesRecord.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.0001
}
