package rules

import (
	sitter "github.com/smacker/go-tree-sitter"

	"sfclint/internal/diag"
	"sfclint/internal/rule"
	"sfclint/internal/script"
)

// NoProcessEnv reports process.env and rewrites it to import.meta.env.
type NoProcessEnv struct{}

func (NoProcessEnv) ID() string { return "no-process-env" }

func (NoProcessEnv) Description() string {
	return "use import.meta.env instead of process.env"
}

func (NoProcessEnv) Check(ctx *rule.Context, r diag.Reporter) {
	eachMember(ctx, func(m script.Member) {
		if m.Object != "process" || m.Property != "env" {
			return
		}
		span := ctx.ScriptSpan(script.SpanOf(m.Node))
		diag.Report(r, span, "Use `import.meta.env` instead of `process.env`.").
			WithFix("replace with import.meta.env", span, "import.meta.env").
			Emit()
	})
}

// PreferImportMeta reports the Nuxt 2 process.client/process.server flags.
type PreferImportMeta struct{}

func (PreferImportMeta) ID() string { return "nuxt/prefer-import-meta" }

func (PreferImportMeta) Description() string {
	return "use import.meta.client/server instead of process.client/server"
}

func (PreferImportMeta) Check(ctx *rule.Context, r diag.Reporter) {
	eachMember(ctx, func(m script.Member) {
		if m.Object != "process" || (m.Property != "client" && m.Property != "server") {
			return
		}
		replacement := "import.meta." + m.Property
		span := ctx.ScriptSpan(script.SpanOf(m.Node))
		diag.Report(r, span, "Use `"+replacement+"` instead of `process."+m.Property+"`.").
			WithFix("replace with "+replacement, span, replacement).
			Emit()
	})
}

// eachMember visits every ident.prop member expression of the script.
func eachMember(ctx *rule.Context, visit func(script.Member)) {
	p := ctx.Program
	if p == nil {
		return
	}
	script.Walk(p.Root(), func(n *sitter.Node) bool {
		if m, ok := p.MemberParts(n); ok {
			visit(m)
		}
		return true
	})
}
