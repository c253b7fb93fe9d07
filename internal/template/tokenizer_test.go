package template

import (
	"testing"

	"sfclint/internal/source"
)

func firstOfKind(t *testing.T, toks []Token, kind Kind) Token {
	t.Helper()
	for _, tok := range toks {
		if tok.Kind == kind {
			return tok
		}
	}
	t.Fatalf("no %s token in %+v", kind, toks)
	return Token{}
}

func TestTokenizeStartTagSpanCoversWholeTag(t *testing.T) {
	src := `<li v-for="i in items">`
	toks := Tokenize(src)
	if len(toks) != 2 || toks[1].Kind != KindEOF {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	tag := toks[0]
	if tag.Kind != KindStartTag || tag.Name != "li" {
		t.Fatalf("tag = %+v", tag)
	}
	if tag.Span != (source.Span{Start: 0, End: uint32(len(src))}) {
		t.Fatalf("span = %v, want 0-%d", tag.Span, len(src))
	}
	attr, ok := tag.Attr("v-for")
	if !ok || attr.Value != "i in items" {
		t.Fatalf("v-for attr = %+v, %v", attr, ok)
	}
	if attr.Span != (source.Span{Start: 4, End: 21}) {
		t.Fatalf("attr span = %v", attr.Span)
	}
	if got := src[attr.Span.Start:attr.Span.End]; got != `v-for="i in items` {
		t.Fatalf("attr text = %q", got)
	}
}

func TestTokenizeTagStartsAtAngleBracket(t *testing.T) {
	src := "\n  <div class=\"a\">x</div>"
	toks := Tokenize(src)
	div := firstOfKind(t, toks, KindStartTag)
	if src[div.Span.Start] != '<' {
		t.Fatalf("span starts at %q, want '<'", src[div.Span.Start])
	}
	if div.Span.Start != 3 {
		t.Fatalf("start = %d, want 3", div.Span.Start)
	}
	end := firstOfKind(t, toks, KindEndTag)
	if got := src[end.Span.Start:end.Span.End]; got != "</div>" || end.Name != "div" {
		t.Fatalf("end tag = %q (%s)", got, end.Name)
	}
}

func TestTokenizeTextAndComment(t *testing.T) {
	src := "<p>{{name}}</p><!-- note -->"
	toks := Tokenize(src)

	text := firstOfKind(t, toks, KindText)
	if text.Content != "{{name}}" {
		t.Fatalf("text content = %q", text.Content)
	}
	if text.Span != (source.Span{Start: 3, End: 11}) {
		t.Fatalf("text span = %v", text.Span)
	}

	comment := firstOfKind(t, toks, KindComment)
	if comment.Content != " note " {
		t.Fatalf("comment content = %q", comment.Content)
	}
	if got := src[comment.Span.Start:comment.Span.End]; got != "<!-- note -->" {
		t.Fatalf("comment raw = %q", got)
	}
}

func TestTokenizeDecodesEntitiesButKeepsRawSpan(t *testing.T) {
	src := "<b>a &amp; b</b>"
	text := firstOfKind(t, Tokenize(src), KindText)
	if text.Content != "a & b" {
		t.Fatalf("content = %q", text.Content)
	}
	if got := src[text.Span.Start:text.Span.End]; got != "a &amp; b" {
		t.Fatalf("raw text = %q", got)
	}
}

func TestTokenizeDuplicateAttributesLastValueWins(t *testing.T) {
	tag := firstOfKind(t, Tokenize(`<a x="1" y="2" x="3">`), KindStartTag)
	if len(tag.Attrs) != 2 {
		t.Fatalf("attrs = %+v", tag.Attrs)
	}
	if tag.Attrs[0].Name != "x" || tag.Attrs[0].Value != "3" {
		t.Fatalf("first attr = %+v", tag.Attrs[0])
	}
	if tag.Attrs[1].Name != "y" {
		t.Fatalf("second attr = %+v", tag.Attrs[1])
	}
}

func TestTokenizeSelfClosingAndVueAttributes(t *testing.T) {
	src := `<Comp :key="id" @click="go" v-bind:title="t" disabled />`
	tag := firstOfKind(t, Tokenize(src), KindStartTag)
	if !tag.SelfClosing {
		t.Fatal("expected self-closing")
	}
	if tag.Name != "comp" {
		t.Fatalf("name = %q", tag.Name)
	}
	for _, name := range []string{":key", "@click", "v-bind:title", "disabled"} {
		if !tag.HasAttr(name) {
			t.Errorf("missing attribute %q in %+v", name, tag.Attrs)
		}
	}
	disabled, _ := tag.Attr("disabled")
	if got := src[disabled.Span.Start:disabled.Span.End]; got != "disabled" {
		t.Errorf("valueless attr span text = %q", got)
	}
}

func TestTokenSpansStayInsideSubDocument(t *testing.T) {
	src := "\n  <ul>\n    <li v-for=\"x in xs\" :key=\"x\">{{ x }}</li>\n  </ul>\n<!-- c --> tail"
	var prevEnd uint32
	for _, tok := range Tokenize(src) {
		if tok.Span.Start > tok.Span.End || int(tok.Span.End) > len(src) {
			t.Fatalf("span %v out of bounds for %s", tok.Span, tok.Kind)
		}
		if tok.Kind != KindEOF && tok.Span.Start != prevEnd {
			t.Fatalf("%s token starts at %d, previous ended at %d", tok.Kind, tok.Span.Start, prevEnd)
		}
		prevEnd = tok.Span.End
	}
	if int(prevEnd) != len(src) {
		t.Fatalf("tokens cover %d bytes, want %d", prevEnd, len(src))
	}
}

func TestNextAfterEOF(t *testing.T) {
	tz := NewTokenizer("x")
	if tok := tz.Next(); tok.Kind != KindText {
		t.Fatalf("first = %+v", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := tz.Next(); tok.Kind != KindEOF || tok.Span != (source.Span{Start: 1, End: 1}) {
			t.Fatalf("call %d: %+v", i, tok)
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	toks := Tokenize("")
	if len(toks) != 1 || toks[0].Kind != KindEOF {
		t.Fatalf("tokens = %+v", toks)
	}
}

func TestOffsetIn(t *testing.T) {
	buf := []byte("<div id=\"a\">")
	if off, ok := offsetIn(buf, buf[5:7]); !ok || off != 5 {
		t.Fatalf("sub-slice: off=%d ok=%v", off, ok)
	}
	if _, ok := offsetIn(buf[1:4], buf[5:7]); ok {
		t.Fatal("slice outside base must be rejected")
	}
	cp := append([]byte(nil), buf[5:7]...)
	if _, ok := offsetIn(buf, cp); ok {
		t.Fatal("copied slice must be rejected")
	}
	if _, ok := offsetIn(buf, buf[3:3]); ok {
		t.Fatal("empty slice must be rejected")
	}
}

func TestSpanAccumulator(t *testing.T) {
	var acc spanAccumulator
	if acc.span() != (source.Span{}) {
		t.Fatal("untouched accumulator must yield zero span")
	}
	acc.fold(5, 7)
	acc.fold(2, 4)
	acc.fold(6, 9)
	if got := acc.span(); got != (source.Span{Start: 2, End: 9}) {
		t.Fatalf("span = %v", got)
	}
	acc.reset()
	if acc.seen {
		t.Fatal("reset must clear state")
	}
}
