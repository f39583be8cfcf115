package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/gocut/internal/logging"
	"github.com/yaklabco/gocut/pkg/extract"
)

// Runner processes input files against a fixed selection. The selection's
// position list is parsed once and read-only, so workers share it without
// coordination.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run extracts the selected portions of every input file in opts. Outcomes
// are returned in input order regardless of worker scheduling, and a file
// that fails to open or read is recorded on its outcome without aborting
// the rest of the run.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Selection.Mode == extract.ModeNone {
		return nil, extract.ErrNoSelection
	}

	files := opts.effectiveFiles()
	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
	}

	logger := logging.FromContext(ctx)
	logger.Debug("starting run",
		logging.FieldFiles, files,
		logging.FieldMode, opts.Selection.Mode.String(),
		logging.FieldPositions, opts.Selection.Positions.String(),
	)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	type workItem struct {
		index int
		path  string
	}

	type workResult struct {
		index   int
		outcome FileOutcome
	}

	workCh := make(chan workItem)
	outCh := make(chan workResult)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range workCh {
				select {
				case <-ctx.Done():
					return
				default:
				}

				outcome := processFile(item.path, opts)

				select {
				case <-ctx.Done():
					return
				case outCh <- workResult{index: item.index, outcome: outcome}:
				}
			}
		}()
	}

	go func() {
		defer close(workCh)
		for i, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- workItem{index: i, path: path}:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key outcomes by input index so
	// duplicate paths stay distinct and output order stays deterministic.
	outcomes := make(map[int]FileOutcome, len(files))
	for res := range outCh {
		outcomes[res.index] = res.outcome
	}

	for i := range files {
		if outcome, ok := outcomes[i]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	logger.Debug("run complete",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldLinesEmitted, result.Stats.LinesEmitted,
	)

	return result, nil
}
