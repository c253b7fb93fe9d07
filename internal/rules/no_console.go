package rules

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"sfclint/internal/diag"
	"sfclint/internal/rule"
	"sfclint/internal/script"
)

// NoConsole reports statements of the form console.<method>(…).
type NoConsole struct{}

func (NoConsole) ID() string { return "no-console" }

func (NoConsole) Description() string {
	return "disallow console calls; the fix comments them out"
}

func (NoConsole) Check(ctx *rule.Context, r diag.Reporter) {
	p := ctx.Program
	if p == nil {
		return
	}
	script.Walk(p.Root(), func(n *sitter.Node) bool {
		_, callee, ok := script.CallOf(n)
		if !ok {
			return true
		}
		m, ok := p.MemberParts(callee)
		if !ok || m.Object != "console" {
			return true
		}
		name := "console." + m.Property
		span := ctx.ScriptSpan(script.SpanOf(n))
		b := diag.Report(r, span, fmt.Sprintf("Unexpected console statement: %s", name))
		// вне списка операторов комментарий ломает синтаксис: if (x) /* … */
		if script.InStatementList(n) {
			b.WithFix("comment out "+name, span, "/* "+name+" */")
		}
		b.Emit()
		return true
	})
}
