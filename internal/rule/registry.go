package rule

import (
	"context"
	"fmt"

	"sfclint/internal/config"
	"sfclint/internal/diag"
	"sfclint/internal/trace"
)

// Registry holds rules in registration order. It is not modified after
// setup and is safe for concurrent Run calls.
type Registry struct {
	rules []Rule
	index map[string]int
}

// NewRegistry registers rules in the given order.
func NewRegistry(rules ...Rule) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(rules))}
	for _, rl := range rules {
		if err := r.Register(rl); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a rule. Duplicate ids are rejected.
func (r *Registry) Register(rl Rule) error {
	if rl == nil {
		return fmt.Errorf("nil rule")
	}
	id := rl.ID()
	if _, dup := r.index[id]; dup {
		return fmt.Errorf("rule %q registered twice", id)
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[id] = len(r.rules)
	r.rules = append(r.rules, rl)
	return nil
}

// Rules returns the registered rules in order.
func (r *Registry) Rules() []Rule {
	return r.rules
}

// Unknown returns the config entries that name no registered rule, sorted.
func (r *Registry) Unknown(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}
	var out []string
	for _, id := range cfg.IDs() {
		if _, ok := r.Lookup(id); !ok {
			out = append(out, id)
		}
	}
	return out
}

// Lookup finds a rule by id.
func (r *Registry) Lookup(id string) (Rule, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	return r.rules[i], true
}

// SeverityFor maps a configured state to a diagnostic severity.
func SeverityFor(s config.State) diag.Severity {
	if s == config.StateWarn {
		return diag.SevWarning
	}
	return diag.SevError
}

// Run checks rc with every rule not switched off in cfg. Diagnostics are
// returned in registration order, then emission order.
func (r *Registry) Run(ctx context.Context, rc *Context, cfg *config.Config) *diag.Bag {
	bag := diag.NewBag(0)
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)
	for _, rl := range r.rules {
		state := cfg.State(rl.ID())
		if state == config.StateOff {
			continue
		}
		span := trace.Begin(tracer, trace.ScopeRule, "rule:"+rl.ID(), parent)
		before := bag.Len()
		rl.Check(rc, diag.RuleReporter{
			Next:     diag.BagReporter{Bag: bag},
			Rule:     rl.ID(),
			Severity: SeverityFor(state),
		})
		span.WithExtra("diagnostics", fmt.Sprint(bag.Len()-before)).End("")
	}
	return bag
}
