package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sfclint/internal/config"
	"sfclint/internal/driver"
	"sfclint/internal/fix"
	"sfclint/internal/report"
	"sfclint/internal/rule"
	"sfclint/internal/rules"
	"sfclint/internal/trace"
)

func init() {
	rootCmd.Flags().Bool("fix", false, "apply available fixes and write files back")
	rootCmd.Flags().Bool("json", false, "shorthand for --format json")
	rootCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	rootCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	rootCmd.Flags().String("fix-conflicts", "apply", "overlapping fixes policy (apply|skip)")
	rootCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	rootCmd.Flags().Bool("timings", false, "show timing information")
	rootCmd.Flags().Bool("no-ignore", false, "do not filter files through .gitignore")
}

type lintFlags struct {
	fix       bool
	format    report.Format
	jobs      int
	conflicts fix.ConflictPolicy
	ui        uiMode
	timings   bool
	quiet     bool
	noIgnore  bool
	config    string
}

func readLintFlags(cmd *cobra.Command) (lintFlags, error) {
	var lf lintFlags
	var err error

	if lf.fix, err = cmd.Flags().GetBool("fix"); err != nil {
		return lf, fmt.Errorf("failed to get fix flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return lf, fmt.Errorf("failed to get json flag: %w", err)
	}
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return lf, fmt.Errorf("failed to get format flag: %w", err)
	}
	if asJSON {
		if cmd.Flags().Changed("format") && formatStr != string(report.FormatJSON) {
			return lf, fmt.Errorf("--json conflicts with --format %s", formatStr)
		}
		formatStr = string(report.FormatJSON)
	}
	if lf.format, err = report.ParseFormat(formatStr); err != nil {
		return lf, err
	}
	if lf.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return lf, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if lf.jobs < 0 {
		return lf, fmt.Errorf("--jobs must be >= 0")
	}
	conflictsStr, err := cmd.Flags().GetString("fix-conflicts")
	if err != nil {
		return lf, fmt.Errorf("failed to get fix-conflicts flag: %w", err)
	}
	if lf.conflicts, err = fix.ParseConflictPolicy(conflictsStr); err != nil {
		return lf, err
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return lf, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if lf.ui, err = readUIMode(uiStr); err != nil {
		return lf, err
	}
	if lf.timings, err = cmd.Flags().GetBool("timings"); err != nil {
		return lf, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if lf.noIgnore, err = cmd.Flags().GetBool("no-ignore"); err != nil {
		return lf, fmt.Errorf("failed to get no-ignore flag: %w", err)
	}
	if lf.quiet, err = cmd.Root().PersistentFlags().GetBool("quiet"); err != nil {
		return lf, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if lf.config, err = cmd.Root().PersistentFlags().GetString("config"); err != nil {
		return lf, fmt.Errorf("failed to get config flag: %w", err)
	}
	return lf, nil
}

// runLint executes the root command: it resolves configuration, lints every
// component under args, renders the report and returns errProblems when a
// file failed or an error-severity diagnostic remains.
func runLint(cmd *cobra.Command, args []string) error {
	lf, err := readLintFlags(cmd)
	if err != nil {
		return err
	}

	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	ctx := cmd.Context()

	reg := rules.Default()
	cfg, err := loadConfig(ctx, cmd.ErrOrStderr(), reg, lf.config, lf.quiet)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Config:    cfg,
		Registry:  reg,
		Fix:       lf.fix,
		Conflicts: lf.conflicts,
		Jobs:      lf.jobs,
		Timings:   lf.timings,
		NoIgnore:  lf.noIgnore,
	}

	files, err := driver.Discover(args, lf.noIgnore)
	if err != nil {
		return err
	}

	var results []*driver.Result
	if len(files) > 0 && shouldUseTUI(lf.ui, lf.format, isTerminal) {
		results, err = runLintWithUI(ctx, "linting", files, opts)
	} else {
		results, err = driver.LintFiles(ctx, files, opts)
	}
	if err != nil {
		return err
	}

	color, err := readColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	ropts := report.Opts{Color: color, Quiet: lf.quiet}
	if wd, wdErr := os.Getwd(); wdErr == nil {
		ropts.BaseDir = wd
	}
	if err := report.Write(cmd.OutOrStdout(), lf.format, results, ropts); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if lf.timings {
		printTimings(cmd.ErrOrStderr(), results)
	}

	for _, r := range results {
		if r.HasErrors() {
			return errProblems
		}
	}
	return nil
}

// loadConfig resolves the rule configuration and reports entries with an
// unknown state or an unknown rule id. Rules with an unknown state stay
// enabled at error severity.
func loadConfig(ctx context.Context, errOut io.Writer, reg *rule.Registry, explicit string, quiet bool) (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Resolve(explicit, wd)
	if err != nil {
		return nil, err
	}
	tracer := trace.FromContext(ctx)
	for _, u := range cfg.Unrecognized {
		msg := fmt.Sprintf("unknown state %q for rule %s, treating as error", u.Value, u.Rule)
		trace.Warn(tracer, trace.ScopeDriver, "config", msg, trace.CurrentSpan(ctx))
		if !quiet {
			fmt.Fprintf(errOut, "warning: %s: %s\n", cfg.Path, msg)
		}
	}
	for _, id := range reg.Unknown(cfg) {
		msg := fmt.Sprintf("unknown rule %s", id)
		trace.Warn(tracer, trace.ScopeDriver, "config", msg, trace.CurrentSpan(ctx))
		if !quiet {
			fmt.Fprintf(errOut, "warning: %s: %s\n", cfg.Path, msg)
		}
	}
	return cfg, nil
}
