package source

import (
	"fmt"
)

// Span is a half-open byte interval [Start, End).
// Spans produced by analyses are relative to some sub-document until they are
// shifted by that sub-document's anchor.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// NewSpan builds a span from int offsets, failing when they do not fit into uint32.
func NewSpan(start, end int) (Span, error) {
	s, err := toOffset(start)
	if err != nil {
		return Span{}, err
	}
	e, err := toOffset(end)
	if err != nil {
		return Span{}, err
	}
	if e < s {
		return Span{}, fmt.Errorf("span end %d before start %d", e, s)
	}
	return Span{Start: s, End: e}, nil
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Contains reports whether off lies inside [Start, End).
func (s Span) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}

// Overlaps reports whether two spans share at least one byte.
// A zero-length span overlaps a non-empty span that strictly contains its position.
func (s Span) Overlaps(other Span) bool {
	if s.Empty() && other.Empty() {
		return false
	}
	if s.Empty() {
		return other.Start <= s.Start && s.Start < other.End
	}
	if other.Empty() {
		return s.Start <= other.Start && other.Start < s.End
	}
	return s.Start < other.End && other.Start < s.End
}

// Less orders spans by start, then by end.
func (s Span) Less(other Span) bool {
	if s.Start != other.Start {
		return s.Start < other.Start
	}
	return s.End < other.End
}

// ShiftLeft moves the span n bytes to the left. When n exceeds Start the span
// is returned unchanged.
func (s Span) ShiftLeft(n uint32) Span {
	if n > s.Start {
		return s
	}
	return Span{
		Start: s.Start - n,
		End:   s.End - n,
	}
}

// ShiftRight translates a sub-document span into the coordinates of the
// enclosing document whose sub-document starts at anchor.
func (s Span) ShiftRight(anchor uint32) Span {
	return Span{
		Start: s.Start + anchor,
		End:   s.End + anchor,
	}
}

// InBounds reports whether the span is well formed and fits into a text of length n.
func (s Span) InBounds(n int) bool {
	return s.Start <= s.End && int(s.End) <= n
}
