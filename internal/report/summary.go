package report

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// WriteSummary overwrites the results artifact at path with the rounded total
// and the raw elapsed time of the run.
func WriteSummary(path string, total, elapsedSeconds float64) error {
	var b strings.Builder
	b.WriteString("Total cost of all sales: " + formatNumber(RoundCents(total)) + "\n")
	b.WriteString("Execution time: " + strconv.FormatFloat(elapsedSeconds, 'f', -1, 64) + " seconds\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	return nil
}
