package template

import (
	"strings"

	"golang.org/x/net/html"

	"sfclint/internal/source"
)

// Tokenizer adapts the x/net/html byte-stream tokenizer, which hands out
// byte slices but no positions, into a stream of positioned Tokens.
//
// Positions are recovered without help from the engine: the adapter threads
// the running offset of every engine token (the engine's raw slices tile the
// input) and locates every slice the engine surfaces inside that raw slice by
// slice identity. Each located slice is folded into the current token's span.
type Tokenizer struct {
	z      *html.Tokenizer
	offset int // offset of the next engine token within the sub-document
	acc    spanAccumulator
	queue  []Token
	done   bool
}

// NewTokenizer starts a single pass over src, the template sub-document.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{z: html.NewTokenizer(strings.NewReader(src))}
}

// Tokenize runs a full pass and returns every token, ending with KindEOF.
func Tokenize(src string) []Token {
	tz := NewTokenizer(src)
	var out []Token
	for {
		tok := tz.Next()
		out = append(out, tok)
		if tok.Kind == KindEOF {
			return out
		}
	}
}

// Next returns the next token. After the end of input it keeps returning
// a KindEOF token; a fresh Tokenizer is needed to tokenize again.
func (t *Tokenizer) Next() Token {
	for len(t.queue) == 0 {
		if t.done {
			end := uint32(t.offset)
			return Token{Kind: KindEOF, Span: source.Span{Start: end, End: end}}
		}
		t.step()
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	return tok
}

// observe folds sub into the current token span when it is a slice of raw.
// base is the offset of raw inside the sub-document.
func (t *Tokenizer) observe(raw, sub []byte, base int) (source.Span, bool) {
	off, ok := offsetIn(raw, sub)
	if !ok {
		return source.Span{}, false
	}
	start := base + off
	end := start + len(sub)
	t.acc.fold(start, end)
	return source.Span{Start: uint32(start), End: uint32(end)}, true
}

// step advances the engine by one token and pushes at most one Token.
func (t *Tokenizer) step() {
	tt := t.z.Next()
	if tt == html.ErrorToken {
		// io.EOF for a strings.Reader; a trailing partial tag is dropped.
		t.done = true
		end := uint32(t.offset)
		t.queue = append(t.queue, Token{Kind: KindEOF, Span: source.Span{Start: end, End: end}})
		return
	}

	raw := t.z.Raw()
	base := t.offset
	t.offset += len(raw)
	t.acc.reset()
	t.observe(raw, raw, base)

	switch tt {
	case html.StartTagToken, html.SelfClosingTagToken:
		name, hasAttr := t.z.TagName()
		t.observe(raw, name, base)
		tok := Token{
			Kind:        KindStartTag,
			Name:        string(name),
			SelfClosing: tt == html.SelfClosingTagToken,
		}
		for hasAttr {
			var key, val []byte
			key, val, hasAttr = t.z.TagAttr()
			attr := Attribute{Name: string(key), Value: string(val)}
			keySpan, keyOK := t.observe(raw, key, base)
			valSpan, valOK := t.observe(raw, val, base)
			switch {
			case keyOK && valOK:
				attr.Span = keySpan.Cover(valSpan)
			case keyOK:
				attr.Span = keySpan
			}
			tok.setAttr(attr)
		}
		tok.Span = t.acc.span()
		t.queue = append(t.queue, tok)

	case html.EndTagToken:
		name, _ := t.z.TagName()
		t.observe(raw, name, base)
		t.queue = append(t.queue, Token{Kind: KindEndTag, Name: string(name), Span: t.acc.span()})

	case html.TextToken, html.CommentToken:
		text := t.z.Text()
		t.observe(raw, text, base)
		kind := KindText
		if tt == html.CommentToken {
			kind = KindComment
		}
		t.queue = append(t.queue, Token{Kind: kind, Content: string(text), Span: t.acc.span()})

	case html.DoctypeToken:
		// not relevant inside component templates
	}
}
