package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sfclint/internal/config"
	"sfclint/internal/driver"
	"sfclint/internal/observ"
	"sfclint/internal/report"
	"sfclint/internal/rules"
)

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		in      string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{" ON ", uiModeOn, false},
		{"off", uiModeOff, false},
		{"sometimes", "", true},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("readUIMode(%q) err = %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestShouldUseTUI(t *testing.T) {
	var probed *os.File
	tty := func(f *os.File) bool { probed = f; return true }
	notty := func(*os.File) bool { return false }

	if !shouldUseTUI(uiModeAuto, report.FormatPretty, tty) {
		t.Fatal("auto mode on a terminal should show progress")
	}
	if probed != uiOutput {
		t.Fatalf("terminal check ran on %v, want the UI output stream", probed)
	}
	if shouldUseTUI(uiModeAuto, report.FormatPretty, notty) {
		t.Fatal("auto mode without a terminal should stay quiet")
	}
	if !shouldUseTUI(uiModeOn, report.FormatShort, notty) || shouldUseTUI(uiModeOff, report.FormatPretty, tty) {
		t.Fatal("explicit ui modes must win over terminal detection")
	}
	if shouldUseTUI(uiModeOn, report.FormatJSON, tty) {
		t.Fatal("json output never gets progress")
	}
}

func TestPrintRules(t *testing.T) {
	cfg, err := config.Parse([]byte(`{"rules":{"no-console":"off","vue/no-v-html":"warn"}}`), config.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := printRules(&buf, rules.Default(), cfg); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("want 6 rules, got %d:\n%s", len(lines), buf.String())
	}
	if f := strings.Fields(lines[0]); f[0] != "no-console" || f[1] != "off" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if f := strings.Fields(lines[1]); f[0] != "no-process-env" || f[1] != "error" {
		t.Errorf("line 1 = %q", lines[1])
	}
	if f := strings.Fields(lines[2]); f[0] != "vue/no-v-html" || f[1] != "warn" {
		t.Errorf("line 2 = %q", lines[2])
	}
}

func TestLoadConfigReportsUnknownState(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".linterrc.json")
	if err := os.WriteFile(path, []byte(`{"rules":{"no-console":"loud","no-such-rule":"off"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	var errOut bytes.Buffer
	cfg, err := loadConfig(context.Background(), &errOut, rules.Default(), path, false)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Enabled("no-console") {
		t.Fatal("unknown state must keep the rule enabled")
	}
	if !strings.Contains(errOut.String(), `unknown state "loud" for rule no-console`) {
		t.Fatalf("warning missing: %q", errOut.String())
	}
	if !strings.Contains(errOut.String(), "unknown rule no-such-rule") {
		t.Fatalf("unknown rule warning missing: %q", errOut.String())
	}

	errOut.Reset()
	if _, err := loadConfig(context.Background(), &errOut, rules.Default(), path, true); err != nil {
		t.Fatal(err)
	}
	if errOut.Len() != 0 {
		t.Fatalf("quiet mode printed %q", errOut.String())
	}
}

func TestPrintTimings(t *testing.T) {
	results := []*driver.Result{
		{Timing: &observ.Report{Phases: []observ.PhaseReport{{Name: "parse", DurationMS: 1}}, TotalMS: 1}},
		{Timing: &observ.Report{Phases: []observ.PhaseReport{{Name: "parse", DurationMS: 2}}, TotalMS: 2}},
		{},
	}
	var buf bytes.Buffer
	printTimings(&buf, results)
	out := buf.String()
	if !strings.Contains(out, "parse") || !strings.Contains(out, "3.00 ms") {
		t.Fatalf("unexpected timings:\n%s", out)
	}

	buf.Reset()
	printTimings(&buf, nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestRenderVersion(t *testing.T) {
	info := versionInfo{Version: "1.0.0"}
	var buf bytes.Buffer
	renderVersionPretty(&buf, info, true)
	if !strings.Contains(buf.String(), "sfclint 1.0.0") || !strings.Contains(buf.String(), "commit: unknown") {
		t.Fatalf("pretty output:\n%s", buf.String())
	}

	buf.Reset()
	if err := renderVersionJSON(&buf, info, false); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "sfclint" || payload.GitCommit != "" {
		t.Fatalf("payload = %+v", payload)
	}
}
