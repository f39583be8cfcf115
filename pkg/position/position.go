// Package position parses cut-style position lists such as "1,3-5,15" into
// ordered half-open ranges. Positions are 1-based on the wire and 0-based in
// the parsed representation.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyList is returned when the position list string is empty.
var ErrEmptyList = errors.New("position lists cannot be empty")

// IllegalValueError reports a structurally invalid list segment. Value holds
// the original offending substring so the message is reproducible verbatim.
type IllegalValueError struct {
	Value string
}

func (e *IllegalValueError) Error() string {
	return fmt.Sprintf("illegal list value: %q", e.Value)
}

// InvertedRangeError reports a range whose first number is not strictly lower
// than its second. Both numbers are 1-based, as the user wrote them.
type InvertedRangeError struct {
	First  int
	Second int
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("First number in range (%d) must be lower than second number (%d)",
		e.First, e.Second)
}

// Range is a half-open interval [Start, End) of 0-based indices.
type Range struct {
	Start int
	End   int
}

// String renders the range back in 1-based list notation: "N" for a
// single-position range, "L-U" otherwise.
func (r Range) String() string {
	if r.End == r.Start+1 {
		return strconv.Itoa(r.Start + 1)
	}
	return fmt.Sprintf("%d-%d", r.Start+1, r.End)
}

// PositionList is an ordered sequence of ranges. Order is significant: it
// determines output order during extraction. The list is never sorted,
// merged, or deduplicated, so overlapping ranges duplicate output.
type PositionList []Range

// String renders the list back in the comma-separated notation accepted by
// Parse. Parsing the result yields an equal list.
func (p PositionList) String() string {
	parts := make([]string, len(p))
	for i, r := range p {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

// Parse converts a comma-separated list of 1-based positions and ranges into
// a PositionList. It fails on the first invalid part, left to right.
//
// Each comma-separated part is either a single position "N" or a range "L-U"
// with L strictly lower than U. Endpoints must be plain decimal: a leading
// "+" is rejected even though strconv would accept it, and 0 is never a valid
// position. Leading zeros are ordinary decimal ("01" is 1).
func Parse(spec string) (PositionList, error) {
	if spec == "" {
		return nil, ErrEmptyList
	}

	parts := strings.Split(spec, ",")
	list := make(PositionList, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			// No single part is identifiable as the culprit, so the
			// message names the whole spec.
			return nil, &IllegalValueError{Value: spec}
		}

		endpoints := strings.Split(part, "-")
		if len(endpoints) > 2 {
			return nil, &IllegalValueError{Value: part}
		}

		bounds := make([]int, 0, 2)
		for _, endpoint := range endpoints {
			n, err := parseEndpoint(endpoint)
			if err != nil {
				return nil, &IllegalValueError{Value: part}
			}
			if n == 0 {
				return nil, &IllegalValueError{Value: "0"}
			}
			bounds = append(bounds, n)
		}

		lower := bounds[0]
		if len(bounds) == 1 {
			list = append(list, Range{Start: lower - 1, End: lower})
			continue
		}

		upper := bounds[1]
		if lower >= upper {
			return nil, &InvertedRangeError{First: lower, Second: upper}
		}
		list = append(list, Range{Start: lower - 1, End: upper})
	}

	return list, nil
}

// parseEndpoint parses a single endpoint as a non-negative decimal integer.
// A leading "+" sign is illegal even though strconv.Atoi accepts one.
func parseEndpoint(endpoint string) (int, error) {
	if strings.HasPrefix(endpoint, "+") {
		return 0, fmt.Errorf("leading sign in endpoint %q", endpoint)
	}
	n, err := strconv.Atoi(endpoint)
	if err != nil {
		return 0, err
	}
	return n, nil
}
