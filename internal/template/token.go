package template

import "sfclint/internal/source"

// Kind discriminates template tokens.
type Kind uint8

const (
	KindStartTag Kind = iota + 1
	KindEndTag
	KindText
	KindComment
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindStartTag:
		return "start-tag"
	case KindEndTag:
		return "end-tag"
	case KindText:
		return "text"
	case KindComment:
		return "comment"
	case KindEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Attribute is one name/value pair of a start tag.
type Attribute struct {
	Name  string
	Value string
	// Span covers the name through the end of the value, relative to the
	// template sub-document. It is empty when no position was observed.
	Span source.Span
}

// Token is a template token. Which fields are meaningful depends on Kind:
// Name for tags, Attrs and SelfClosing for start tags, Content for text and
// comments.
//
// Span is relative to the template sub-document. A zero-length span at offset
// 0 means the position is unknown.
type Token struct {
	Kind        Kind
	Name        string
	Attrs       []Attribute
	SelfClosing bool
	Content     string
	Span        source.Span
}

// Attr returns the attribute with the given name.
func (t *Token) Attr(name string) (Attribute, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// HasAttr reports whether the start tag carries the attribute.
func (t *Token) HasAttr(name string) bool {
	_, ok := t.Attr(name)
	return ok
}

// setAttr keeps attribute names unique in first-seen order; the last value wins.
func (t *Token) setAttr(a Attribute) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == a.Name {
			t.Attrs[i] = a
			return
		}
	}
	t.Attrs = append(t.Attrs, a)
}
