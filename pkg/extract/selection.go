package extract

import (
	"errors"

	"github.com/yaklabco/gocut/pkg/position"
)

// ErrNoSelection is returned when a caller asks for extraction without
// choosing a selection mode.
var ErrNoSelection = errors.New("must have --fields, --bytes, or --chars")

// Mode identifies the granularity a position list indexes into.
type Mode int

const (
	// ModeNone is the zero value: no selection mode was chosen.
	ModeNone Mode = iota
	ModeFields
	ModeBytes
	ModeChars
)

// String returns the flag-style name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFields:
		return "fields"
	case ModeBytes:
		return "bytes"
	case ModeChars:
		return "chars"
	default:
		return "none"
	}
}

// Selection pairs a mode with the position list it indexes. Exactly one mode
// is active per invocation; enforcing mutual exclusion among the selection
// flags is the CLI's job, but callers can still hand a zero Selection to the
// runner, which rejects it with ErrNoSelection.
type Selection struct {
	Mode      Mode
	Positions position.PositionList
}

// FieldSelection returns a field-mode selection over the given positions.
func FieldSelection(positions position.PositionList) Selection {
	return Selection{Mode: ModeFields, Positions: positions}
}

// ByteSelection returns a byte-mode selection over the given positions.
func ByteSelection(positions position.PositionList) Selection {
	return Selection{Mode: ModeBytes, Positions: positions}
}

// CharSelection returns a char-mode selection over the given positions.
func CharSelection(positions position.PositionList) Selection {
	return Selection{Mode: ModeChars, Positions: positions}
}
