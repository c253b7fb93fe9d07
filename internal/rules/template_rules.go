package rules

import (
	"regexp"
	"strings"

	"sfclint/internal/diag"
	"sfclint/internal/rule"
	"sfclint/internal/source"
	"sfclint/internal/template"
)

// NoVHtml reports elements using v-html.
type NoVHtml struct{}

func (NoVHtml) ID() string { return "vue/no-v-html" }

func (NoVHtml) Description() string { return "disallow v-html (XSS risk)" }

func (NoVHtml) Check(ctx *rule.Context, r diag.Reporter) {
	eachStartTag(ctx, func(tok *template.Token) {
		if tok.HasAttr("v-html") {
			diag.Report(r, ctx.TemplateSpan(tok.Span), "Do not use `v-html` to prevent XSS.").Emit()
		}
	})
}

// RequireVForKey reports v-for elements without a bound key.
type RequireVForKey struct{}

func (RequireVForKey) ID() string { return "vue/require-v-for-key" }

func (RequireVForKey) Description() string { return "require :key on elements with v-for" }

func (RequireVForKey) Check(ctx *rule.Context, r diag.Reporter) {
	eachStartTag(ctx, func(tok *template.Token) {
		if !tok.HasAttr("v-for") || tok.HasAttr(":key") || tok.HasAttr("v-bind:key") {
			return
		}
		diag.Report(r, ctx.TemplateSpan(tok.Span),
			"Elements in iteration expect to have 'v-bind:key' directives.").Emit()
	})
}

func eachStartTag(ctx *rule.Context, visit func(*template.Token)) {
	for i := range ctx.Tokens {
		if ctx.Tokens[i].Kind == template.KindStartTag {
			visit(&ctx.Tokens[i])
		}
	}
}

var mustache = regexp.MustCompile(`\{\{(.*?)\}\}`)

// MustacheSpacing requires exactly one space inside {{ }}.
type MustacheSpacing struct{}

func (MustacheSpacing) ID() string { return "vue/mustache-interpolation-spacing" }

func (MustacheSpacing) Description() string { return "enforce {{ x }} spacing in interpolations" }

func (MustacheSpacing) Check(ctx *rule.Context, r diag.Reporter) {
	for i := range ctx.Tokens {
		tok := &ctx.Tokens[i]
		if tok.Kind != template.KindText || tok.Span.Empty() {
			continue
		}
		// по сырому тексту: декодированные сущности сдвигают смещения
		raw := ctx.TemplateSource(tok.Span)
		for _, m := range mustache.FindAllStringSubmatchIndex(raw, -1) {
			inner := raw[m[2]:m[3]]
			trimmed := strings.TrimSpace(inner)
			if trimmed == "" || inner == " "+trimmed+" " {
				continue
			}
			rel := source.Span{
				Start: tok.Span.Start + uint32(m[0]),
				End:   tok.Span.Start + uint32(m[1]),
			}
			span := ctx.TemplateSpan(rel)
			diag.Report(r, span, "Mustache interpolation should have spacing.").
				WithFix("add spacing", span, "{{ "+trimmed+" }}").
				Emit()
		}
	}
}
