package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sfclint/internal/driver"
)

func writeComponents(t *testing.T, n int) []string {
	t.Helper()
	dir := t.TempDir()
	files := make([]string, n)
	for i := range files {
		files[i] = filepath.Join(dir, fmt.Sprintf("C%03d.vue", i))
		if err := os.WriteFile(files[i], []byte("<script>\nconsole.log(1)\n</script>\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return files
}

func TestLintWithEventsEarlyExitDoesNotBlock(t *testing.T) {
	files := writeComponents(t, 300)
	viewErr := errors.New("terminal gone")

	done := make(chan error, 1)
	go func() {
		_, err := lintWithEvents(context.Background(), files, driver.Options{Jobs: 2}, func(events <-chan driver.Event) (tea.Model, error) {
			for range 3 {
				<-events
			}
			return nil, viewErr
		})
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, viewErr) {
			t.Fatalf("err = %v, want %v", err, viewErr)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("lint blocked after the view stopped reading events")
	}
}

func TestLintWithEventsCompletes(t *testing.T) {
	files := writeComponents(t, 5)
	results, err := lintWithEvents(context.Background(), files, driver.Options{}, func(events <-chan driver.Event) (tea.Model, error) {
		for range events {
		}
		return nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(files) {
		t.Fatalf("got %d results for %d files", len(results), len(files))
	}
	for _, r := range results {
		if r == nil || len(r.Diagnostics) != 1 {
			t.Fatalf("unexpected result %+v", r)
		}
	}
}
