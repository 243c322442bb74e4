package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SourceExtensions are the file suffixes ParseDir picks up.
var SourceExtensions = []string{".vhd", ".vhdl"}

func isSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range SourceExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// ListSources returns every VHDL file under dir, sorted for a
// deterministic order.
func ListSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isSource(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ParseDir parses every VHDL file under dir in parallel. Results come back
// in ListSources order. A file that cannot be read is reported in its
// result's Err and does not stop the others; only cancellation or a
// failing walk returns an error.
func ParseDir(ctx context.Context, dir string, opts Options) ([]*FileResult, error) {
	files, err := ListSources(dir)
	if err != nil {
		return nil, err
	}
	return ParseFiles(ctx, files, opts)
}

// ParseFiles is ParseDir over an explicit file list.
func ParseFiles(ctx context.Context, files []string, opts Options) ([]*FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	opts.logger().Debug("parsing files", zap.Int("files", len(files)), zap.Int("jobs", jobs))

	// each goroutine owns its own slot
	results := make([]*FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = parsePath(gctx, path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
