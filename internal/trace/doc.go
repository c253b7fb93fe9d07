// Package trace records what the linter does while it runs.
//
// Events are written as text or NDJSON to a file or stderr:
//
//	sfclint --trace=- --trace-level=detail src/
//
// # Levels
//
//   - LevelOff: nothing
//   - LevelError: warnings and failures only
//   - LevelPhase: run boundaries and per-file spans
//   - LevelDetail: analysis passes (extract, tokenize, parse, rules, fix)
//   - LevelDebug: individual rules
//
// # Scopes
//
//   - ScopeDriver: whole run (discovery, worker pool)
//   - ScopeFile: one component file
//   - ScopePass: one analysis pass over a file
//   - ScopeRule: one rule over one file
//
// The tracer travels through the pipeline in a context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopeFile, path, 0)
//	defer span.End("")
package trace
