package report

import (
	"fmt"
	"io"

	"sfclint/internal/diag"
	"sfclint/internal/driver"
)

// Short writes one line per diagnostic:
//
//	<severity> <rule> <path>:<line>:<col> <message>
//
// Files that failed produce `error - <path> <err>`. The output follows the
// result order and is stable for golden files.
func Short(w io.Writer, results []*driver.Result, opts Opts) error {
	for _, res := range results {
		if res == nil {
			continue
		}
		path := displayPath(res.Path, opts)
		if res.Err != nil {
			if _, err := fmt.Fprintf(w, "error - %s %s\n", path, sanitizeMessage(res.Err.Error())); err != nil {
				return err
			}
		}
		for _, d := range res.Diagnostics {
			if opts.Quiet && d.Severity < diag.SevError {
				continue
			}
			msg := sanitizeMessage(d.Message)
			if d.SkipReason != "" {
				msg += " (" + d.SkipReason + ")"
			}
			_, err := fmt.Fprintf(w, "%s %s %s:%d:%d %s\n", d.Severity, d.Rule, path, d.Start.Line, d.Start.Col, msg)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
