package main

import (
	"fmt"
	"os"
	"strings"

	"sfclint/internal/report"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// uiOutput is the stream the progress UI draws on. The report keeps stdout.
var uiOutput = os.Stderr

func readUIMode(value string) (uiMode, error) {
	switch uiMode(strings.TrimSpace(strings.ToLower(value))) {
	case "", uiModeAuto:
		return uiModeAuto, nil
	case uiModeOn:
		return uiModeOn, nil
	case uiModeOff:
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// shouldUseTUI decides whether to show progress. JSON output never gets
// it; auto mode requires the UI stream to be a terminal.
func shouldUseTUI(mode uiMode, format report.Format, interactive func(*os.File) bool) bool {
	if format == report.FormatJSON {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return interactive(uiOutput)
	}
}
