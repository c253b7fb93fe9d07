package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sfclint/internal/diag"
	"sfclint/internal/driver"
	"sfclint/internal/source"
)

type palette struct {
	path    *color.Color
	err     *color.Color
	warn    *color.Color
	info    *color.Color
	rule    *color.Color
	gutter  *color.Color
	caret   *color.Color
	fixed   *color.Color
	summary *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		path:    color.New(color.Bold),
		err:     color.New(color.FgRed, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
		info:    color.New(color.FgCyan),
		rule:    color.New(color.FgHiBlack),
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgRed),
		fixed:   color.New(color.FgGreen),
		summary: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.err, p.warn, p.info, p.rule, p.gutter, p.caret, p.fixed, p.summary} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует результаты в человекочитаемый вид:
//
//	<path>:<line>:<col>: <severity> <message> [<rule>]
//	   8 | console.log('x')
//	     | ^^^^^^^^^^^^^^^^
//
// and ends with a summary line.
func Pretty(w io.Writer, results []*driver.Result, opts Opts) error {
	p := newPalette(opts.Color)
	var sb strings.Builder
	var errs, warns, fixed, failed int

	for _, res := range results {
		if res == nil {
			continue
		}
		path := displayPath(res.Path, opts)
		fixed += res.FixedCount
		if res.Err != nil {
			failed++
			fmt.Fprintf(&sb, "%s: %s %s\n", p.path.Sprint(path), p.err.Sprint("error"), sanitizeMessage(res.Err.Error()))
		}
		for _, d := range res.Diagnostics {
			switch d.Severity {
			case diag.SevError:
				errs++
			case diag.SevWarning:
				warns++
			}
			if opts.Quiet && d.Severity < diag.SevError {
				continue
			}
			writeDiagnostic(&sb, p, path, res.File, d)
		}
	}

	writeSummary(&sb, p, errs, warns, fixed, failed)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDiagnostic(sb *strings.Builder, p palette, path string, file *source.File, d driver.Located) {
	fmt.Fprintf(sb, "%s: %s %s %s",
		p.path.Sprintf("%s:%d:%d", path, d.Start.Line, d.Start.Col),
		p.severity(d.Severity).Sprint(d.Severity.String()),
		sanitizeMessage(d.Message),
		p.rule.Sprintf("[%s]", d.Rule),
	)
	switch {
	case d.Fixed:
		sb.WriteString(" " + p.fixed.Sprint("(fixed)"))
	case d.SkipReason != "":
		sb.WriteString(" " + p.warn.Sprintf("(%s)", d.SkipReason))
	case d.Fix != nil:
		sb.WriteString(" " + p.fixed.Sprint("(fixable)"))
	}
	sb.WriteByte('\n')

	if file == nil {
		return
	}
	line := file.GetLine(d.Start.Line)
	if line == "" {
		return
	}
	gutter := fmt.Sprintf("%4d | ", d.Start.Line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	fmt.Fprintf(sb, "%s%s\n", p.gutter.Sprint(gutter), strings.ReplaceAll(line, "\t", tabSpaces))
	pad, width := caretExtent(line, d.Start, d.End)
	fmt.Fprintf(sb, "%s%s%s\n", p.gutter.Sprint(blank), strings.Repeat(" ", pad), p.caret.Sprint(strings.Repeat("^", width)))
}

// caretExtent returns the display offset and width of the underline for a
// span starting on line. Multi-line spans are underlined to the end of the
// first line.
func caretExtent(line string, start, end source.LineCol) (pad, width int) {
	runes := []rune(line)
	s := min(int(start.Col)-1, len(runes))
	e := len(runes)
	if end.Line == start.Line {
		e = min(int(end.Col)-1, len(runes))
	}
	if s < 0 {
		s = 0
	}
	if e < s {
		e = s
	}
	pad = displayWidth(runes[:s])
	width = max(displayWidth(runes[s:e]), 1)
	return pad, width
}

const tabSpaces = "    "

// displayWidth measures runes in terminal cells; tabs are expanded to
// tabSpaces.
func displayWidth(runes []rune) int {
	w := 0
	for _, r := range runes {
		if r == '\t' {
			w += len(tabSpaces)
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func writeSummary(sb *strings.Builder, p palette, errs, warns, fixed, failed int) {
	total := errs + warns
	if total == 0 && fixed == 0 && failed == 0 {
		sb.WriteString(p.fixed.Sprint("no problems") + "\n")
		return
	}
	msg := fmt.Sprintf("%d %s (%d %s, %d %s)",
		total, plural(total, "problem"), errs, plural(errs, "error"), warns, plural(warns, "warning"))
	if fixed > 0 {
		msg += fmt.Sprintf(", %d fixed", fixed)
	}
	if failed > 0 {
		msg += fmt.Sprintf(", %d %s failed", failed, plural(failed, "file"))
	}
	sb.WriteString(p.summary.Sprint(msg) + "\n")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
