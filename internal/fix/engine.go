// Package fix applies the replacements attached to diagnostics.
//
// Fixes are applied right to left on one buffer: sorting by descending start
// keeps every offset still to be applied valid, since each replacement only
// shifts text to its right.
package fix

import (
	"fmt"
	"sort"
	"strings"

	"sfclint/internal/diag"
	"sfclint/internal/source"
)

// ConflictPolicy decides what happens to a fix that overlaps one already
// applied.
type ConflictPolicy uint8

const (
	// ConflictApply applies overlapping fixes anyway. The result may be
	// corrupted; this matches the historical behaviour.
	ConflictApply ConflictPolicy = iota
	// ConflictSkip drops a fix that overlaps an applied one.
	ConflictSkip
)

func (p ConflictPolicy) String() string {
	switch p {
	case ConflictApply:
		return "apply"
	case ConflictSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// ParseConflictPolicy converts a flag value to a ConflictPolicy.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(s) {
	case "", "apply":
		return ConflictApply, nil
	case "skip":
		return ConflictSkip, nil
	default:
		return ConflictApply, fmt.Errorf("invalid conflict policy: %q (expected: apply|skip)", s)
	}
}

// Skip reasons.
const (
	ReasonOutOfRange = "fix span out of range"
	ReasonConflict   = "fix unavailable due to conflict"
)

// ApplyOptions configures Apply.
type ApplyOptions struct {
	Conflicts ConflictPolicy
}

// SkippedFix captures a fix that was not applied.
type SkippedFix struct {
	Index  int // index into the diagnostics passed to Apply
	Title  string
	Span   source.Span
	Reason string
}

// Result is the outcome of Apply.
type Result struct {
	// Content is the rewritten text. It equals the input when nothing was
	// applied.
	Content []byte
	// Applied lists the indices of diagnostics whose fix was applied, in
	// application order.
	Applied []int
	Skipped []SkippedFix
}

// Count returns the number of fixes actually applied.
func (r *Result) Count() int {
	return len(r.Applied)
}

// Changed reports whether at least one fix was applied.
func (r *Result) Changed() bool {
	return len(r.Applied) > 0
}

type candidate struct {
	index int
	fix   *diag.Fix
}

// Apply applies the fixes of diagnostics to content. content is not
// modified.
func Apply(content []byte, diagnostics []diag.Diagnostic, opts ApplyOptions) *Result {
	cands := gatherCandidates(diagnostics)
	res := &Result{Content: content}
	if len(cands) == 0 {
		return res
	}
	sortCandidates(cands)

	buf := append([]byte(nil), content...)
	applied := make([]source.Span, 0, len(cands))
	for _, c := range cands {
		sp := c.fix.Span
		if !sp.InBounds(len(buf)) {
			res.Skipped = append(res.Skipped, skipped(c, ReasonOutOfRange))
			continue
		}
		if opts.Conflicts == ConflictSkip && conflictsWithApplied(applied, sp) {
			res.Skipped = append(res.Skipped, skipped(c, ReasonConflict))
			continue
		}
		buf = replace(buf, sp, c.fix.NewText)
		applied = append(applied, sp)
		res.Applied = append(res.Applied, c.index)
	}
	if len(res.Applied) > 0 {
		res.Content = buf
	}
	return res
}

func gatherCandidates(diagnostics []diag.Diagnostic) []candidate {
	cands := make([]candidate, 0)
	for i := range diagnostics {
		if diagnostics[i].Fix == nil {
			continue
		}
		cands = append(cands, candidate{index: i, fix: diagnostics[i].Fix})
	}
	return cands
}

// sortCandidates orders by descending start. Ties keep emission order.
func sortCandidates(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].fix.Span.Start > cands[j].fix.Span.Start
	})
}

func conflictsWithApplied(applied []source.Span, sp source.Span) bool {
	for _, prev := range applied {
		if spansConflict(prev, sp) {
			return true
		}
	}
	return false
}

// spansConflict reports whether two replacement ranges overlap.
// Two insertions at the same offset conflict as well: their relative order
// would be arbitrary.
func spansConflict(a, b source.Span) bool {
	if a.Empty() && b.Empty() {
		return a.Start == b.Start
	}
	return a.Overlaps(b)
}

func replace(buf []byte, sp source.Span, text string) []byte {
	suffix := append([]byte(nil), buf[sp.End:]...)
	return append(append(buf[:sp.Start], text...), suffix...)
}

func skipped(c candidate, reason string) SkippedFix {
	return SkippedFix{
		Index:  c.index,
		Title:  c.fix.Title,
		Span:   c.fix.Span,
		Reason: reason,
	}
}
