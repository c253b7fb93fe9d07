package main

import (
	"io"

	"sfclint/internal/driver"
	"sfclint/internal/observ"
)

// printTimings sums per-file pass timings into one table.
func printTimings(out io.Writer, results []*driver.Result) {
	if out == nil {
		return
	}
	reports := make([]observ.Report, 0, len(results))
	for _, r := range results {
		if r == nil || r.Timing == nil {
			continue
		}
		reports = append(reports, *r.Timing)
	}
	if len(reports) == 0 {
		return
	}
	io.WriteString(out, observ.Aggregate(reports).Summary())
}
