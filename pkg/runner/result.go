package runner

import "github.com/samber/lo"

// FileOutcome holds the extracted output lines for one input file.
type FileOutcome struct {
	// Path is the file name as the user gave it ("-" for stdin).
	Path string

	// Lines are the extracted output lines, in input order.
	Lines []string

	// LinesRead is the number of input lines (or records) consumed.
	LinesRead int

	// Err is set if the file could not be opened or read. A failed file
	// never aborts the run; remaining files are still processed.
	Err error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesProcessed is the number of files read to completion.
	FilesProcessed int

	// FilesErrored is the number of files that failed to open or read.
	FilesErrored int

	// LinesRead is the total number of input lines (or records) consumed.
	LinesRead int

	// LinesEmitted is the total number of output lines produced.
	LinesEmitted int
}

// Result is the overall runner result. Files appear in the order the inputs
// were given, regardless of worker scheduling.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any file failed to open or read.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return lo.SomeBy(r.Files, func(o FileOutcome) bool { return o.Err != nil })
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Err != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.LinesRead += outcome.LinesRead
	r.Stats.LinesEmitted += len(outcome.Lines)
}
