package driver

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"hufflint/internal/config"
	"hufflint/internal/diag"
	"hufflint/internal/format"
	"hufflint/internal/source"
)

// AnalyzeBatch lints every file of the batch. Files are independent, so
// the front half and the rule engine both run on a bounded worker pool;
// results land in per-index slots and need no locking. A malformed file
// yields a fatal diagnostic in its own Result and never blocks the rest.
func AnalyzeBatch(ctx context.Context, in Input, cfg *config.Config, jobs int) (*source.FileSet, []Result, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	names := make([]string, 0, len(in.Files))
	for name := range in.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	fs := source.NewFileSet()
	results := make([]Result, len(names))
	for i, name := range names {
		fileID := fs.AddVirtual(name, []byte(in.Files[name]))
		results[i] = Result{
			Name:   name,
			FileID: fileID,
			Bag:    diag.NewBag(cfg.MaxDiagnostics),
		}
	}

	if len(names) == 0 {
		return fs, results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(names)))
	for i := range results {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i].File = parseOne(fs, results[i].FileID, results[i].Bag)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fs, results, err
	}

	// Roles need every parse result, so they sit between the two
	// parallel phases.
	library := libraryRoles(results, in.Includes)

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(names)))
	for i := range results {
		if results[i].Fatal() {
			continue
		}
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			checkOne(fs, cfg, results[i], library)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fs, results, err
	}
	return fs, results, nil
}

// FormatResult is the format-mode outcome for one file.
type FormatResult struct {
	Name    string
	Text    string
	Changed bool
	// Err records a per-file internal-consistency failure (overlapping
	// fixes). The file's lint results stay valid; its text is returned
	// unchanged.
	Err error
}

// FormatBatch analyzes the batch and applies every suggested fix,
// returning the rewritten text per file.
func FormatBatch(ctx context.Context, in Input, cfg *config.Config, jobs int) (map[string]FormatResult, []Result, error) {
	fs, results, err := AnalyzeBatch(ctx, in, cfg, jobs)
	if err != nil {
		return nil, results, err
	}

	out := make(map[string]FormatResult, len(results))
	for _, r := range results {
		src := fs.Get(r.FileID)
		fr := FormatResult{Name: r.Name, Text: string(src.Content)}
		if !r.Fatal() {
			res, ferr := format.File(src, r.Bag.Items())
			if ferr != nil {
				fr.Err = ferr
			} else {
				fr.Text = string(res.Text)
				fr.Changed = res.Changed
			}
		}
		out[r.Name] = fr
	}
	return out, results, nil
}
