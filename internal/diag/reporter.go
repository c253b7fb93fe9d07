package diag

import "sfclint/internal/source"

// Reporter: минимальный контракт получения диагностик от правил.
// Реализации: BagReporter (кладёт в Bag), RuleReporter (проставляет правило).
type Reporter interface {
	Report(d Diagnostic)
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter. Severity and
// rule id are left for the registry to stamp.
func NewReportBuilder(r Reporter, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag: Diagnostic{
			Severity: SevError,
			Message:  msg,
			Primary:  primary,
		},
	}
}

// Report is a shortcut for NewReportBuilder.
func Report(r Reporter, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, primary, msg)
}

// WithFix attaches a replacement of sp by newText.
func (b *ReportBuilder) WithFix(title string, sp source.Span, newText string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithFix(title, sp, newText)
	return b
}

// Emit sends diagnostic to underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// BagReporter: адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// RuleReporter stamps every diagnostic with a rule id and severity before
// forwarding it.
type RuleReporter struct {
	Next     Reporter
	Rule     string
	Severity Severity
}

func (r RuleReporter) Report(d Diagnostic) {
	if r.Next == nil {
		return
	}
	d.Rule = r.Rule
	d.Severity = r.Severity
	r.Next.Report(d)
}
