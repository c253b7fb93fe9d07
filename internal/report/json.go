package report

import (
	"encoding/json"
	"io"

	"sfclint/internal/driver"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Rule         string `json:"rule"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
	StartLine    uint32 `json:"start_line"`
	StartColumn  uint32 `json:"start_column"`
	EndLine      uint32 `json:"end_line"`
	EndColumn    uint32 `json:"end_column"`
	FixAvailable bool   `json:"fix_available"`
	Fixed        bool   `json:"fixed,omitempty"`
	FixSkipped   string `json:"fix_skipped,omitempty"`
}

// FileJSON is the report of one file.
type FileJSON struct {
	Path        string           `json:"path"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	FixedCount  int              `json:"fixed_count"`
	Error       string           `json:"error,omitempty"`
}

// BuildJSON формирует структуру JSON-вывода без сериализации.
func BuildJSON(results []*driver.Result, opts Opts) []FileJSON {
	out := make([]FileJSON, 0, len(results))
	for _, res := range results {
		if res == nil {
			continue
		}
		f := FileJSON{
			Path:        displayPath(res.Path, opts),
			Diagnostics: make([]DiagnosticJSON, 0, len(res.Diagnostics)),
			FixedCount:  res.FixedCount,
		}
		if res.Err != nil {
			f.Error = res.Err.Error()
		}
		for _, d := range res.Diagnostics {
			f.Diagnostics = append(f.Diagnostics, DiagnosticJSON{
				Rule:         d.Rule,
				Severity:     d.Severity.String(),
				Message:      d.Message,
				StartLine:    d.Start.Line,
				StartColumn:  d.Start.Col,
				EndLine:      d.End.Line,
				EndColumn:    d.End.Col,
				FixAvailable: d.Fix != nil,
				Fixed:        d.Fixed,
				FixSkipped:   d.SkipReason,
			})
		}
		out = append(out, f)
	}
	return out
}

// JSON writes the results as an indented JSON array.
func JSON(w io.Writer, results []*driver.Result, opts Opts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildJSON(results, opts))
}
