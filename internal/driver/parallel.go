package driver

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"sfclint/internal/trace"
)

// LintPaths discovers component files under paths and lints them with a
// pool of opts.Jobs workers. Results follow the sorted file order. The
// returned error covers discovery and cancellation only; per-file failures
// are carried in the results.
func LintPaths(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	files, err := Discover(paths, opts.NoIgnore)
	if err != nil {
		return nil, err
	}
	return LintFiles(ctx, files, opts)
}

// LintFiles lints an already discovered file list. Results are index-aligned
// with files.
func LintFiles(ctx context.Context, files []string, opts Options) ([]*Result, error) {
	ctx, span := trace.Start(ctx, trace.ScopeDriver, "lint")
	defer span.End("")
	span.WithExtra("files", strconv.Itoa(len(files)))

	if len(files) == 0 {
		return nil, nil
	}

	// registry и config только читаются воркерами
	opts.Registry = opts.registry()
	opts.Config = opts.config()

	emitQueued(opts.Progress, files)

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]*Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(opts.jobs(), len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = LintFile(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
