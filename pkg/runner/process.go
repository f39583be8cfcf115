package runner

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/yaklabco/gocut/pkg/extract"
	"github.com/yaklabco/gocut/pkg/position"
	"github.com/yaklabco/gocut/pkg/record"
)

// maxLineSize bounds the scanner's token buffer. Lines longer than this are
// a read error on the file, not a crash.
const maxLineSize = 16 * 1024 * 1024

// processFile extracts the selected portions of a single input file.
// Open and read failures land on the outcome; they never panic or abort.
func processFile(path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	in, err := open(path, opts.Stdin)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	defer in.Close()

	switch opts.Selection.Mode {
	case extract.ModeFields:
		outcome.Lines, outcome.LinesRead, outcome.Err = cutFields(in, opts)
	case extract.ModeBytes:
		outcome.Lines, outcome.LinesRead, outcome.Err = cutLines(in, opts, extract.Bytes)
	case extract.ModeChars:
		outcome.Lines, outcome.LinesRead, outcome.Err = cutLines(in, opts, extract.Chars)
	default:
		outcome.Err = extract.ErrNoSelection
	}

	return outcome
}

// open returns a reader for path, mapping "-" to standard input.
func open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdinName {
		if stdin == nil {
			stdin = os.Stdin
		}
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// cutFields reads delimited records and emits the selected fields re-joined
// with the same delimiter.
func cutFields(in io.Reader, opts Options) ([]string, int, error) {
	reader := record.NewReader(in, opts.Delimiter)

	var lines []string
	read := 0
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return lines, read, nil
		}
		if err != nil {
			return lines, read, err
		}
		read++

		fields := extract.Fields(rec, opts.Selection.Positions)
		lines = append(lines, record.Join(fields, opts.Delimiter))
	}
}

// cutLines reads plain lines and applies a byte- or char-level extractor.
func cutLines(in io.Reader, opts Options, fn func(string, position.PositionList) string) ([]string, int, error) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var lines []string
	read := 0
	for scanner.Scan() {
		read++
		lines = append(lines, fn(scanner.Text(), opts.Selection.Positions))
	}
	return lines, read, scanner.Err()
}
