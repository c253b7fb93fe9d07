// Package diag defines the diagnostic model shared by rules, the fix engine
// and the report layer.
//
// A Diagnostic carries a message, a primary span in original-document
// coordinates and at most one Fix. Rules emit through a Reporter, usually with
// a ReportBuilder:
//
//	diag.Report(r, span, "Unexpected console statement").
//		WithFix("remove console call", span, "/* console.log */").
//		Emit()
//
// The registry wraps the reporter in a RuleReporter, which stamps the rule id
// and the configured severity, and collects everything into a Bag in
// emission order. Package diag does no formatting or IO.
package diag
