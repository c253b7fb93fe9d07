package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"sfclint/internal/config"
	"sfclint/internal/diag"
	"sfclint/internal/fix"
	"sfclint/internal/observ"
	"sfclint/internal/rule"
	"sfclint/internal/rules"
	"sfclint/internal/script"
	"sfclint/internal/sfc"
	"sfclint/internal/source"
	"sfclint/internal/template"
	"sfclint/internal/trace"
)

// Options configures a lint run.
type Options struct {
	Config    *config.Config // nil means every rule enabled
	Registry  *rule.Registry // nil means the built-in rules
	Fix       bool
	Conflicts fix.ConflictPolicy
	Jobs      int // worker count; <= 0 means GOMAXPROCS
	Progress  ProgressSink
	Timings   bool
	// NoIgnore disables .gitignore filtering during discovery.
	NoIgnore bool
}

func (o Options) registry() *rule.Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return rules.Default()
}

func (o Options) config() *config.Config {
	if o.Config != nil {
		return o.Config
	}
	return config.Default()
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// Located is a diagnostic with its resolved 1-based positions.
type Located struct {
	diag.Diagnostic
	Start source.LineCol
	End   source.LineCol
	// Fixed is set when the diagnostic's fix was applied and written.
	Fixed bool
	// SkipReason explains why an available fix was not applied.
	SkipReason string
}

// Result is the outcome of linting one file.
type Result struct {
	Path        string
	File        *source.File
	Diagnostics []Located
	// FixedCount is the number of fixes actually applied and persisted.
	FixedCount int
	Skipped    []fix.SkippedFix
	// Content is the fixed text; nil when nothing changed.
	Content []byte
	Timing  *observ.Report
	Err     error
}

// HasErrors reports whether the file failed or still has an error-severity
// diagnostic that was not fixed.
func (r *Result) HasErrors() bool {
	if r.Err != nil {
		return true
	}
	for i := range r.Diagnostics {
		d := &r.Diagnostics[i]
		if d.Severity >= diag.SevError && !d.Fixed {
			return true
		}
	}
	return false
}

// Counts returns the number of error- and warning-severity diagnostics.
func (r *Result) Counts() (errors, warnings int) {
	for i := range r.Diagnostics {
		switch r.Diagnostics[i].Severity {
		case diag.SevError:
			errors++
		case diag.SevWarning:
			warnings++
		}
	}
	return errors, warnings
}

// LintSource analyzes an in-memory file. With opts.Fix it also computes the
// fixed content but writes nothing.
func LintSource(ctx context.Context, file *source.File, opts Options) *Result {
	res := &Result{Path: file.Path, File: file}
	timer := newPhaseTimer(opts.Timings)
	defer func() { res.Timing = timer.report() }()

	idx := timer.begin(passExtract)
	pctx, pass := trace.Start(ctx, trace.ScopePass, passExtract)
	doc, err := sfc.Extract(file.Path, file.Text())
	pass.End("")
	timer.end(idx, "")
	if err != nil {
		res.Err = err
		return res
	}

	rc := &rule.Context{Doc: doc}
	if doc.Script.Present {
		lang := script.LangFromAttr(doc.Script.Lang())
		idx = timer.begin(passParse)
		pctx, pass = trace.Start(ctx, trace.ScopePass, passParse)
		prog, err := script.Parse(pctx, doc.Script.Text, lang)
		pass.WithExtra("lang", lang.String()).End("")
		timer.end(idx, lang.String())
		if err != nil {
			res.Err = fmt.Errorf("%s: %w", file.Path, err)
			return res
		}
		defer prog.Close()
		rc.Program = prog
	}
	if doc.Template.Present {
		idx = timer.begin(passTokenize)
		_, pass = trace.Start(ctx, trace.ScopePass, passTokenize)
		rc.Tokens = template.Tokenize(doc.Template.Text)
		pass.WithExtra("tokens", strconv.Itoa(len(rc.Tokens))).End("")
		timer.end(idx, "")
	}

	idx = timer.begin(passRules)
	pctx, pass = trace.Start(ctx, trace.ScopePass, passRules)
	bag := opts.registry().Run(pctx, rc, opts.config())
	pass.WithExtra("diagnostics", strconv.Itoa(bag.Len())).End("")
	timer.end(idx, "")

	items := bag.Items()
	res.Diagnostics = make([]Located, len(items))
	for i, d := range items {
		start, end := file.Resolve(d.Primary)
		res.Diagnostics[i] = Located{Diagnostic: d, Start: start, End: end}
	}

	if !opts.Fix || bag.Fixable() == 0 {
		return res
	}
	idx = timer.begin(passFix)
	_, pass = trace.Start(ctx, trace.ScopePass, passFix)
	applied := fix.Apply(file.Content, items, fix.ApplyOptions{Conflicts: opts.Conflicts})
	for _, i := range applied.Applied {
		res.Diagnostics[i].Fixed = true
	}
	tracer := trace.FromContext(ctx)
	for _, s := range applied.Skipped {
		res.Diagnostics[s.Index].SkipReason = s.Reason
		trace.Warn(tracer, trace.ScopePass, "fix:"+items[s.Index].Rule, s.Reason+" at "+s.Span.String(), pass.ID())
	}
	res.FixedCount = applied.Count()
	res.Skipped = applied.Skipped
	if applied.Changed() {
		res.Content = applied.Content
	}
	pass.WithExtra("applied", strconv.Itoa(res.FixedCount)).End("")
	timer.end(idx, fmt.Sprintf("%d applied", res.FixedCount))
	return res
}

// LintFile reads path, lints it and, with opts.Fix, writes the fixed
// content back. A write failure keeps the diagnostics but resets the fixed
// count to zero.
func LintFile(ctx context.Context, path string, opts Options) *Result {
	tracer := trace.FromContext(ctx)
	ctx, span := trace.Start(ctx, trace.ScopeFile, "file:"+path)
	defer span.End("")

	started := time.Now()
	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	file, err := source.Load(path)
	if err != nil {
		err = fmt.Errorf("failed to read %s: %w", path, err)
		trace.Warn(tracer, trace.ScopeFile, "read", err.Error(), span.ID())
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return &Result{Path: filepath.ToSlash(filepath.Clean(path)), Err: err}
	}

	emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusWorking})
	res := LintSource(ctx, file, opts)
	if res.Err != nil {
		emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusError, Err: res.Err, Elapsed: time.Since(started)})
		return res
	}

	if res.Content != nil {
		emit(opts.Progress, Event{File: path, Stage: StageFix, Status: StatusWorking})
		if err := fix.WriteFile(file, res.Content); err != nil {
			trace.Warn(tracer, trace.ScopeFile, "write", err.Error(), span.ID())
			res.Err = err
			res.FixedCount = 0
			for i := range res.Diagnostics {
				res.Diagnostics[i].Fixed = false
			}
			emit(opts.Progress, Event{File: path, Stage: StageFix, Status: StatusError, Err: err, Elapsed: time.Since(started)})
			return res
		}
	}
	span.WithExtra("diagnostics", strconv.Itoa(len(res.Diagnostics))).WithExtra("fixed", strconv.Itoa(res.FixedCount))
	emit(opts.Progress, Event{File: path, Stage: StageAnalyze, Status: StatusDone, Elapsed: time.Since(started)})
	return res
}
