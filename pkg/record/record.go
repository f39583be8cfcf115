// Package record reads delimiter-separated records for field extraction.
// It wraps encoding/csv so quoted fields survive splitting losslessly.
package record

import (
	"encoding/csv"
	"io"
	"strings"
)

// Reader yields one record per input line, split on a single-byte delimiter.
type Reader struct {
	csv *csv.Reader
}

// NewReader creates a Reader over r using delim as the field separator.
// The delimiter should be an ASCII byte: encoding/csv compares the separator
// as a decoded rune, so a raw byte above 0x7F only matches input where the
// same value appears as a full UTF-8 sequence, never as a lone byte.
func NewReader(r io.Reader, delim byte) *Reader {
	cr := csv.NewReader(r)
	cr.Comma = rune(delim)
	// Records may have any number of fields, and bare quotes in the middle
	// of unquoted fields are data, not syntax.
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return &Reader{csv: cr}
}

// Read returns the next record. It returns io.EOF when the input is
// exhausted.
func (r *Reader) Read() ([]string, error) {
	return r.csv.Read()
}

// Join re-assembles fields into an output line using the same single-byte
// delimiter the input was split on.
func Join(fields []string, delim byte) string {
	// string(delim) would re-encode bytes above 0x7F as multi-byte UTF-8.
	return strings.Join(fields, string([]byte{delim}))
}
