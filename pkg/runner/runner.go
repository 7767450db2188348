package runner

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/talign/internal/logging"
	"github.com/yaklabco/talign/pkg/align"
	"github.com/yaklabco/talign/pkg/fsutil"
)

// Runner orchestrates formatting across many files with a worker pool.
// Each document is rendered by the pure align pipeline; parallelism exists
// only across documents, never inside one.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and formats them concurrently.
// It returns outcomes in deterministic (sorted path) order and aggregate
// stats. Configuration is validated before any file is touched; an invalid
// width or alignment fails the whole run with no partial output.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mode, err := align.ParseMode(string(cfg.Align))
	if err != nil {
		return nil, err
	}

	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range workCh {
				outCh <- r.processFile(ctx, path, cfg.Width, mode, opts)
			}
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; re-sequence by discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// processFile formats a single file: read, render, and either rewrite the
// source in place or hand the rendered lines back through the outcome.
func (r *Runner) processFile(ctx context.Context, path string, width int, mode align.Mode, opts Options) FileOutcome {
	logger := logging.FromContext(ctx)
	outcome := FileOutcome{Path: path}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	text := string(content)
	outcome.Words = len(align.Words(text))

	lines, err := align.Render(text, width, mode)
	if err != nil {
		// Width is validated before the pool starts; reaching this
		// means a programming error, not a user one.
		outcome.Error = err
		return outcome
	}
	outcome.Lines = lines

	if !opts.Config.Write {
		return outcome
	}

	// In-place rewrite. Refuse to clobber a file that changed under us.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if modified {
		logger.Warn("source changed during run, skipping", logging.FieldPath, path)
		outcome.Skipped = true
		return outcome
	}

	if opts.Config.Backup {
		if _, err := fsutil.CreateBackup(ctx, path); err != nil {
			outcome.Error = err
			return outcome
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(JoinLines(lines)), info.Mode)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Written = written
	outcome.Unchanged = !written
	logger.Debug("processed file",
		logging.FieldPath, path,
		logging.FieldLinesEmitted, len(lines),
		logging.FieldWrite, written,
	)
	return outcome
}

// JoinLines renders the output document: newline-joined lines with a
// trailing newline, or empty output for an empty document.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
