package template

import "sfclint/internal/source"

// offsetIn reports where sub starts inside base when both slices share the
// same backing array. Sub-slices that live elsewhere (copies made by the
// engine) report ok == false.
//
// Both slices must be plain two-index slices of the engine buffer, so their
// capacities run to the end of that buffer and differ by exactly the offset.
func offsetIn(base, sub []byte) (int, bool) {
	if len(sub) == 0 || len(base) == 0 {
		return 0, false
	}
	off := cap(base) - cap(sub)
	if off < 0 || off+len(sub) > len(base) {
		return 0, false
	}
	if &base[off] != &sub[0] {
		return 0, false
	}
	return off, true
}

// spanAccumulator folds observed intervals into a running min-start/max-end
// pair for the token being assembled.
type spanAccumulator struct {
	start int
	end   int
	seen  bool
}

func (a *spanAccumulator) reset() {
	*a = spanAccumulator{}
}

func (a *spanAccumulator) fold(start, end int) {
	if !a.seen {
		a.start, a.end, a.seen = start, end, true
		return
	}
	if start < a.start {
		a.start = start
	}
	if end > a.end {
		a.end = end
	}
}

// span finalizes the accumulated interval. Nothing observed yields the
// zero span, which callers treat as an unknown position.
func (a *spanAccumulator) span() source.Span {
	if !a.seen {
		return source.Span{}
	}
	return source.Span{Start: uint32(a.start), End: uint32(a.end)}
}
