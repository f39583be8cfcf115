// Package runner orchestrates extraction across multiple input files.
package runner

import (
	"io"

	"github.com/yaklabco/gocut/pkg/extract"
)

// StdinName is the conventional file name denoting standard input.
const StdinName = "-"

// Options controls a multi-file extraction run.
type Options struct {
	// Files are the input files in the order they were given. The name
	// "-" denotes standard input. If empty, the run reads standard input.
	Files []string

	// Selection is the granularity and position list to extract.
	Selection extract.Selection

	// Delimiter is the single-byte field delimiter. It splits records in
	// field mode and re-joins the extracted fields on output. Ignored in
	// byte and char modes.
	Delimiter byte

	// Jobs controls the maximum number of concurrent file workers.
	// 0 or negative means auto (NumCPU), capped at the file count.
	Jobs int

	// Stdin is the reader used for "-" inputs. Defaults to os.Stdin.
	Stdin io.Reader
}

// effectiveFiles returns the files to process, defaulting to stdin if empty.
func (o Options) effectiveFiles() []string {
	if len(o.Files) == 0 {
		return []string{StdinName}
	}
	return o.Files
}
