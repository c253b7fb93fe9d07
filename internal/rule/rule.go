// Package rule defines the contract between analyses and the driver.
//
// A Rule inspects a read-only Context and reports findings through a
// diag.Reporter. Spans in reported diagnostics must already be in
// original-document coordinates; use Context.ScriptSpan and
// Context.TemplateSpan to translate local spans.
package rule

import (
	"sfclint/internal/diag"
	"sfclint/internal/script"
	"sfclint/internal/sfc"
	"sfclint/internal/source"
	"sfclint/internal/template"
)

// Rule is one analysis.
type Rule interface {
	// ID is the stable identifier used by configuration.
	ID() string
	// Check inspects ctx and reports findings. It must not modify ctx.
	Check(ctx *Context, r diag.Reporter)
}

// Describer is implemented by rules that carry a one-line description.
type Describer interface {
	Description() string
}

// Context is the per-file input shared by all rules.
type Context struct {
	Doc *sfc.Document
	// Program is nil when the document has no script block.
	Program *script.Program
	// Tokens is nil when the document has no template block.
	Tokens []template.Token
}

// ScriptSpan translates a span relative to the script sub-document.
func (c *Context) ScriptSpan(rel source.Span) source.Span {
	return rel.ShiftRight(c.Doc.Script.Start)
}

// TemplateSpan translates a span relative to the template sub-document.
func (c *Context) TemplateSpan(rel source.Span) source.Span {
	return rel.ShiftRight(c.Doc.Template.Start)
}

// TemplateSource returns the raw template bytes under a token-relative span.
func (c *Context) TemplateSource(rel source.Span) string {
	text := c.Doc.Template.Text
	if !rel.InBounds(len(text)) {
		return ""
	}
	return text[rel.Start:rel.End]
}
