// Package extract applies a parsed position list to a line of input at byte,
// character, or field granularity.
//
// All three extraction functions share the same tolerance policy: indices
// beyond the input's bounds are skipped silently, never an error. Ranges are
// applied verbatim in the order given, so selection order drives output order
// and overlapping ranges duplicate output.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gocut/pkg/position"
)

// Bytes copies the selected byte indices out of line and re-decodes the
// result as UTF-8. Slicing is byte-oriented, not encoding-aware: a range
// that splits a multi-byte character mid-sequence leaves invalid bytes
// behind, and each maximal ill-formed subsequence is replaced with a single
// U+FFFD instead of failing. Two adjacent ill-formed subsequences yield two
// markers, not one.
func Bytes(line string, positions position.PositionList) string {
	var out []byte
	for _, r := range positions {
		for i := r.Start; i < r.End && i < len(line); i++ {
			out = append(out, line[i])
		}
	}
	return lossyDecode(out)
}

// lossyDecode converts b to a valid UTF-8 string, substituting one U+FFFD
// per maximal ill-formed subsequence (the Unicode "maximal subpart"
// recommendation): a stray continuation byte is one subsequence, while a
// truncated lead plus its valid continuation bytes count as one together.
func lossyDecode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b))
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			sb.WriteRune(utf8.RuneError)
			i += illFormedLen(b[i:])
			continue
		}
		sb.Write(b[i : i+size])
		i += size
	}
	return sb.String()
}

// illFormedLen returns the length of the maximal ill-formed subsequence at
// the start of b, at least 1. A valid lead byte absorbs the continuation
// bytes that are acceptable for its position, so a sequence truncated at end
// of input is a single subsequence.
func illFormedLen(b []byte) int {
	// Acceptable range for the first continuation byte depends on the lead
	// (surrogate and overlong exclusions).
	var need int
	var lo, hi byte = 0x80, 0xBF
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		need, lo = 2, 0xA0
	case c >= 0xE1 && c <= 0xEC, c == 0xEE, c == 0xEF:
		need = 2
	case c == 0xED:
		need, hi = 2, 0x9F
	case c == 0xF0:
		need, lo = 3, 0x90
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	case c == 0xF4:
		need, hi = 3, 0x8F
	default:
		// Stray continuation byte or invalid lead.
		return 1
	}

	n := 1
	for ; n <= need && n < len(b); n++ {
		if b[n] < lo || b[n] > hi {
			break
		}
		lo, hi = 0x80, 0xBF
	}
	return n
}

// Chars copies the selected character indices out of line. Indices count
// Unicode code points, not bytes, so no replacement markers can occur.
func Chars(line string, positions position.PositionList) string {
	runes := []rune(line)

	var b strings.Builder
	for _, r := range positions {
		for i := r.Start; i < r.End && i < len(runes); i++ {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

// Fields copies the selected fields out of an already-split record. Joining
// the result with the output delimiter is the caller's responsibility.
func Fields(record []string, positions position.PositionList) []string {
	out := make([]string, 0, len(positions))
	for _, r := range positions {
		for i := r.Start; i < r.End && i < len(record); i++ {
			out = append(out, record[i])
		}
	}
	return out
}
