package driver

import (
	"sfclint/internal/observ"
)

// Pass names recorded by the per-file timer and the tracer.
const (
	passExtract  = "extract"
	passParse    = "parse"
	passTokenize = "tokenize"
	passRules    = "rules"
	passFix      = "fix"
)

// phaseTimer records pass durations when enabled; a nil timer is a no-op.
type phaseTimer struct {
	t *observ.Timer
}

func newPhaseTimer(enabled bool) phaseTimer {
	if !enabled {
		return phaseTimer{}
	}
	return phaseTimer{t: observ.NewTimer()}
}

func (p phaseTimer) begin(name string) int {
	if p.t == nil {
		return -1
	}
	return p.t.Begin(name)
}

func (p phaseTimer) end(idx int, note string) {
	if p.t == nil {
		return
	}
	p.t.End(idx, note)
}

func (p phaseTimer) report() *observ.Report {
	if p.t == nil {
		return nil
	}
	r := p.t.Report()
	return &r
}
