package source

import (
	"testing"
)

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span left by 5",
			span:     Span{Start: 10, End: 20},
			shift:    5,
			expected: Span{Start: 5, End: 15},
		},
		{
			name:     "shift equals start - boundary case",
			span:     Span{Start: 10, End: 20},
			shift:    10,
			expected: Span{Start: 0, End: 10},
		},
		{
			name:     "shift larger than start - returns original",
			span:     Span{Start: 10, End: 20},
			shift:    15,
			expected: Span{Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{Start: 10, End: 10},
			shift:    3,
			expected: Span{Start: 7, End: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.ShiftLeft(tt.shift)
			if result != tt.expected {
				t.Errorf("ShiftLeft() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestSpan_ShiftRight(t *testing.T) {
	tests := []struct {
		name   string
		span   Span
		anchor uint32
		want   Span
	}{
		{"script relative span", Span{Start: 1, End: 18}, 49, Span{Start: 50, End: 67}},
		{"zero anchor", Span{Start: 3, End: 4}, 0, Span{Start: 3, End: 4}},
		{"empty span", Span{}, 12, Span{Start: 12, End: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftRight(tt.anchor); got != tt.want {
				t.Errorf("ShiftRight(%d) = %+v, want %+v", tt.anchor, got, tt.want)
			}
			if got := tt.span.ShiftRight(tt.anchor).Len(); got != tt.span.Len() {
				t.Errorf("ShiftRight changed length: %d != %d", got, tt.span.Len())
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{Start: 4, End: 9}
	b := Span{Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{Start: 2, End: 9}) {
		t.Fatalf("Cover = %v", got)
	}
	if got := b.Cover(a); got != (Span{Start: 2, End: 9}) {
		t.Fatalf("Cover is not symmetric: %v", got)
	}
}

func TestSpan_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{0, 3}, Span{3, 5}, false},
		{"nested", Span{0, 10}, Span{2, 4}, true},
		{"partial", Span{0, 4}, Span{3, 8}, true},
		{"two empty at same point", Span{3, 3}, Span{3, 3}, false},
		{"empty inside", Span{3, 3}, Span{1, 5}, true},
		{"empty at end", Span{5, 5}, Span{1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("%v.Overlaps(%v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSpan_LessAndBounds(t *testing.T) {
	if !(Span{1, 5}).Less(Span{2, 3}) {
		t.Error("expected start ordering")
	}
	if !(Span{1, 3}).Less(Span{1, 5}) {
		t.Error("expected end ordering on equal start")
	}
	if (Span{1, 5}).Less(Span{1, 5}) {
		t.Error("equal spans must not be less")
	}
	if !(Span{0, 4}).InBounds(4) || (Span{0, 5}).InBounds(4) || (Span{3, 2}).InBounds(4) {
		t.Error("InBounds mismatch")
	}
}

func TestNewSpan(t *testing.T) {
	sp, err := NewSpan(2, 7)
	if err != nil {
		t.Fatalf("NewSpan: %v", err)
	}
	if sp != (Span{Start: 2, End: 7}) {
		t.Fatalf("NewSpan = %v", sp)
	}
	if _, err := NewSpan(7, 2); err == nil {
		t.Fatal("expected error for inverted span")
	}
	if _, err := NewSpan(-1, 2); err == nil {
		t.Fatal("expected error for negative offset")
	}
}
