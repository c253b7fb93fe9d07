package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	i := tm.Begin("parse")
	tm.End(i, "ts")
	j := tm.Begin("rules")
	tm.End(j, "")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "parse" || r.Phases[0].Note != "ts" {
		t.Fatalf("unexpected report %+v", r)
	}
	s := tm.Summary()
	if !strings.Contains(s, "parse") || !strings.Contains(s, "// ts") || !strings.Contains(s, "total") {
		t.Fatalf("summary %q", s)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("unexpected %+v", r)
	}
}

func TestAggregate(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: "parse", DurationMS: 1}, {Name: "rules", DurationMS: 2}}}
	b := Report{TotalMS: 5, Phases: []PhaseReport{{Name: "rules", DurationMS: 4}, {Name: "fix", DurationMS: 1, Note: "x"}}}
	got := Aggregate([]Report{a, b})
	if got.TotalMS != 8 || len(got.Phases) != 3 {
		t.Fatalf("got %+v", got)
	}
	if got.Phases[1].Name != "rules" || got.Phases[1].DurationMS != 6 {
		t.Fatalf("rules = %+v", got.Phases[1])
	}
	if got.Phases[2].Note != "" {
		t.Fatal("notes should be dropped")
	}
}
