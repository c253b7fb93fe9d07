package main

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"sfclint/internal/driver"
	"sfclint/internal/ui"
)

var errInterrupted = errors.New("interrupted")

type lintOutcome struct {
	results []*driver.Result
	err     error
}

func runLintWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]*driver.Result, error) {
	return lintWithEvents(ctx, files, opts, func(events <-chan driver.Event) (tea.Model, error) {
		model := ui.NewProgressModel(title, files, events)
		program := tea.NewProgram(model, tea.WithOutput(uiOutput))
		return program.Run()
	})
}

// lintWithEvents runs the lint in the background and hands its progress
// events to view. Once view returns the run is cancelled and the remaining
// events are drained, so workers never block on a full channel.
func lintWithEvents(ctx context.Context, files []string, opts driver.Options, view func(<-chan driver.Event) (tea.Model, error)) ([]*driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan lintOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.LintFiles(ctx, files, opts)
		outcomeCh <- lintOutcome{results: res, err: err}
		close(events)
	}()

	final, uiErr := view(events)
	// после выхода из UI события больше никто не читает
	cancel()
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	if ui.Interrupted(final) {
		return outcome.results, errInterrupted
	}
	return outcome.results, outcome.err
}
