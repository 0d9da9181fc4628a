package colscan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Format selects which Loader/Scanner pair a Processor drives.
type Format int

const (
	// FormatCSV scans files as CSV.
	FormatCSV Format = iota
	// FormatJSON scans files as JSON.
	FormatJSON
)

// Option configures a Processor.
type Option func(*Processor)

// WithWorkers overrides the default worker count (runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithNegotiate enables passing collected schemas through Negotiate and
// populating Result.Negotiated.
func WithNegotiate() Option {
	return func(p *Processor) { p.negotiate = true }
}

// Processor enumerates files, scans each one independently, and
// optionally negotiates the resulting schemas into one consensus schema.
// A Loader+Scanner pair is a pure, self-contained unit per file, so many
// can run at once with no shared mutable state.
type Processor struct {
	format    Format
	negotiate bool
	workers   int
}

// NewProcessor creates a Processor for the given format.
func NewProcessor(format Format, opts ...Option) *Processor {
	p := &Processor{format: format, workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FileResult is one file's outcome: either a populated Schema, or an
// error and an empty Schema.
type FileResult struct {
	Path   string
	Schema *Schema
	Err    error
}

// Result is the outcome of a Processor run.
type Result struct {
	// Files holds one FileResult per input file, in the same order as
	// the files were enumerated (sorted by path).
	Files []FileResult
	// Negotiated is non-nil only when the Processor was built with
	// WithNegotiate.
	Negotiated *Schema
}

// Run enumerates paths (files or directories, non-recursively expanded),
// scans each file with bounded concurrency, and collects the results. A
// per-file failure never aborts the batch: it is recorded in
// Result.Files with an empty Schema and logged.
func (p *Processor) Run(ctx context.Context, paths ...string) (*Result, error) {
	files, err := expandPaths(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		slog.Warn("colscan: no files found", slog.Any("paths", paths))
		return &Result{}, nil
	}

	workers := p.workers
	if workers < 1 {
		workers = 1
	}

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = p.scanOneFile(gctx, path)
			return nil // non-fatal: capture the error, keep going
		})
	}
	_ = g.Wait() // scanOneFile never returns a group-fatal error

	result := &Result{Files: make([]FileResult, 0, len(files))}
	var schemas []*Schema
	for _, fr := range results {
		logFileResult(fr)
		result.Files = append(result.Files, fr)
		if fr.Schema != nil {
			schemas = append(schemas, fr.Schema)
		}
	}

	if p.negotiate {
		result.Negotiated = Negotiate(schemas)
	}
	return result, nil
}

func (p *Processor) scanOneFile(ctx context.Context, path string) (fr FileResult) {
	fr.Path = path
	fr.Schema = NewSchema()

	defer func() {
		if r := recover(); r != nil {
			fr.Schema = NewSchema()
			fr.Err = fmt.Errorf("%w: %s: %v", ErrWorkerFault, path, r)
		}
	}()

	select {
	case <-ctx.Done():
		fr.Err = ctx.Err()
		return fr
	default:
	}

	var ld loader
	switch p.format {
	case FormatCSV:
		ld = newCSVLoader(path)
	case FormatJSON:
		ld = newJSONLoader(path)
	default:
		fr.Err = fmt.Errorf("colscan: unknown format %v", p.format)
		return fr
	}

	var schema *Schema
	err := withLoader(ld, func(fm frame) error {
		var sc *scanner
		if p.format == FormatCSV {
			sc = newCSVScanner(fm)
		} else {
			sc = newJSONScanner(fm)
		}
		s, scanErr := sc.scan()
		if scanErr != nil {
			return scanErr
		}
		schema = s
		return nil
	})

	if err != nil {
		fr.Err = err
		fr.Schema = NewSchema()
		return fr
	}
	fr.Schema = schema
	return fr
}

// expandPaths resolves a mix of file and directory paths into a
// deduplicated, sorted list of regular files. Directory expansion is
// non-recursive: files in subdirectories are not visited.
func expandPaths(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Warn("colscan: path not found", slog.String("path", p))
				continue
			}
			return nil, newPathError(p, ErrIO, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(p)
			if err != nil {
				return nil, newPathError(p, ErrIO, err)
			}
			for _, e := range entries {
				if e.IsDir() {
					continue
				}
				full := filepath.Join(p, e.Name())
				if _, ok := seen[full]; !ok {
					seen[full] = struct{}{}
					out = append(out, full)
				}
			}
			continue
		}

		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}

	sort.Strings(out)
	return out, nil
}

func logFileResult(fr FileResult) {
	if fr.Err == nil {
		return
	}
	level := slog.LevelWarn
	if errors.Is(fr.Err, ErrWorkerFault) {
		level = slog.LevelError
	}
	slog.Log(context.Background(), level, "colscan: file scan failed",
		slog.String("path", fr.Path), slog.Any("error", fr.Err))
}
