// Package engine orchestrates a scan: it walks the target tree, classifies
// files, runs the matcher, and aggregates per-file reports into a summary.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/polyscan/polyscan/internal/matcher"
	"github.com/polyscan/polyscan/internal/report"
	"github.com/polyscan/polyscan/internal/rules"
	"github.com/polyscan/polyscan/internal/types"
)

// Fatal root access errors. Everything below the root degrades to a
// per-file FileReport instead.
var (
	ErrRootNotFound = errors.New("scan root does not exist")
	ErrNotDirectory = errors.New("scan root is not a directory")
)

// Config controls scanning behavior including scope and parallelism.
type Config struct {
	Root            string
	Recursive       bool
	IncludeGlobs    string // comma-separated, positive filter if set
	ExcludeGlobs    string // comma-separated
	MaxBytes        int64  // skip files larger than this (0 = default 1 MiB)
	Threads         int    // worker count (0 = GOMAXPROCS)
	DefaultExcludes bool   // apply built-in dir/file exclude lists
	Catalog         *rules.Catalog // nil = builtin catalog
	Log             *zap.SugaredLogger
}

// Scan walks cfg.Root and returns the aggregated summary. Only a failure to
// access the root itself is fatal; unreadable or undecodable files are
// recorded on their FileReport and the scan continues. Cancellation is
// checked between files; a canceled scan returns ctx.Err() and no summary,
// since a truncated summary would not be deterministic.
func Scan(ctx context.Context, cfg Config) (types.ScanSummary, error) {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 1 << 20
	}
	if cfg.Log == nil {
		cfg.Log = zap.NewNop().Sugar()
	}
	cat := cfg.Catalog
	if cat == nil {
		var err error
		cat, err = rules.Builtin()
		if err != nil {
			return types.ScanSummary{}, fmt.Errorf("builtin rule catalog: %w", err)
		}
	}

	if err := validateRoot(cfg.Root); err != nil {
		return types.ScanSummary{}, err
	}

	targets, err := collectTargets(cfg)
	if err != nil {
		return types.ScanSummary{}, err
	}
	cfg.Log.Debugw("collected scan targets", "root", cfg.Root, "count", len(targets))

	reports := make([]types.FileReport, len(targets))
	workers := cfg.Threads
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > 32 {
		workers = 32
	}
	if workers > len(targets) && len(targets) > 0 {
		workers = len(targets)
	}

	var canceled atomic.Bool
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				if ctx.Err() != nil {
					canceled.Store(true)
					continue
				}
				reports[i] = scanOne(cat, cfg.Log, targets[i])
			}
		}()
	}
	for i := range targets {
		idx <- i
	}
	close(idx)
	wg.Wait()

	if canceled.Load() || ctx.Err() != nil {
		return types.ScanSummary{}, ctx.Err()
	}
	// Aggregate sorts by path, so worker completion order never leaks into
	// the summary.
	return report.Aggregate(reports), nil
}

func validateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("access scan root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}
	return nil
}

func scanOne(cat *rules.Catalog, log *zap.SugaredLogger, tg target) types.FileReport {
	fr := types.FileReport{Path: tg.rel, Language: tg.language}
	data, err := os.ReadFile(tg.abs)
	if err != nil {
		log.Debugw("file read failed", "path", tg.rel, "err", err)
		fr.ErrorReason = err.Error()
		return fr
	}
	if looksBinary(data) {
		fr.ErrorReason = "binary content"
		return fr
	}
	ms, err := matcher.ScanFile(cat, tg.rel, tg.language, data)
	fr.Matches = ms
	if err != nil {
		log.Debugw("file scan incomplete", "path", tg.rel, "err", err)
		fr.ErrorReason = err.Error()
		return fr
	}
	fr.Scanned = true
	return fr
}
