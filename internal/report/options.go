// Package report renders lint results.
package report

import (
	"fmt"
	"io"
	"strings"

	"sfclint/internal/driver"
	"sfclint/internal/source"
)

// Format selects the output style.
type Format string

const (
	FormatPretty Format = "pretty"
	FormatShort  Format = "short"
	FormatJSON   Format = "json"
)

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatPretty:
		return FormatPretty, nil
	case FormatShort:
		return FormatShort, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected: pretty|short|json)", s)
	}
}

// Opts configures rendering.
type Opts struct {
	Color bool
	// BaseDir makes paths relative to it when set.
	BaseDir string
	// Quiet drops warnings from pretty and short output.
	Quiet bool
}

// Write renders results in the given format.
func Write(w io.Writer, format Format, results []*driver.Result, opts Opts) error {
	switch format {
	case FormatJSON:
		return JSON(w, results, opts)
	case FormatShort:
		return Short(w, results, opts)
	default:
		return Pretty(w, results, opts)
	}
}

func displayPath(path string, opts Opts) string {
	if opts.BaseDir == "" {
		return path
	}
	rel, err := source.RelativePath(path, opts.BaseDir)
	if err != nil {
		return path
	}
	return rel
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
