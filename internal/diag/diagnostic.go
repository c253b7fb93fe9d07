package diag

import (
	"sfclint/internal/source"
)

// Fix replaces Span with NewText. An empty NewText deletes the range.
type Fix struct {
	Title   string
	Span    source.Span
	NewText string
}

// Diagnostic is one finding. Spans are in original-document coordinates.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Primary  source.Span
	Fix      *Fix
}

// Fixable reports whether the diagnostic carries a fix.
func (d *Diagnostic) Fixable() bool {
	return d != nil && d.Fix != nil
}

func (d Diagnostic) WithFix(title string, sp source.Span, newText string) Diagnostic {
	d.Fix = &Fix{Title: title, Span: sp, NewText: newText}
	return d
}
