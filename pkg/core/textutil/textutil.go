// Package textutil provides shared helpers for text applets.
package textutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Range is a 0-based half-open position range. An End of math.MaxInt marks
// an open-ended range ("N-"); extraction clamps it to the input length.
type Range struct {
	Start int
	End   int
}

// ParsePositionList parses a comma-separated list of 1-based positions:
// N, N-M, -M, and N-. Zero positions, signs, and non-numbers are rejected,
// and in N-M the first number must be strictly lower than the second.
func ParsePositionList(spec string) ([]Range, error) {
	var ranges []Range
	for _, part := range strings.Split(spec, ",") {
		r, err := parsePosition(part)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parsePosition(part string) (Range, error) {
	illegal := fmt.Errorf("illegal list value: %q", part)
	pieces := strings.Split(part, "-")
	switch len(pieces) {
	case 1:
		n, err := parseIndex(pieces[0])
		if err != nil {
			return Range{}, err
		}
		return Range{Start: n - 1, End: n}, nil
	case 2:
		lo, hi := pieces[0], pieces[1]
		switch {
		case lo == "" && hi == "":
			return Range{}, illegal
		case lo == "":
			n, err := parseIndex(hi)
			if err != nil {
				return Range{}, illegal
			}
			return Range{Start: 0, End: n}, nil
		case hi == "":
			n, err := parseIndex(lo)
			if err != nil {
				return Range{}, illegal
			}
			return Range{Start: n - 1, End: math.MaxInt}, nil
		default:
			// A non-numeral piece invalidates the whole list value; a
			// numeral that fails (i.e. zero) is reported on its own.
			from, err := parseIndex(lo)
			if err != nil {
				if !isNumeral(lo) {
					return Range{}, illegal
				}
				return Range{}, err
			}
			to, err := parseIndex(hi)
			if err != nil {
				if !isNumeral(hi) {
					return Range{}, illegal
				}
				return Range{}, err
			}
			if from >= to {
				return Range{}, fmt.Errorf(
					"First number in range (%d) must be lower than second number (%d)", from, to)
			}
			return Range{Start: from - 1, End: to}, nil
		}
	default:
		return Range{}, illegal
	}
}

// parseIndex accepts a bare decimal numeral (leading zeros allowed, no
// sign) and requires it to be positive.
func parseIndex(s string) (int, error) {
	if !isNumeral(s) {
		return 0, fmt.Errorf("illegal list value: %q", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("illegal list value: %q", s)
	}
	return n, nil
}

func isNumeral(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func clamp(r Range, n int) (int, int) {
	start, end := r.Start, r.End
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	return start, end
}

// ExtractChars selects runes from line, range by range, in the order given.
// Out-of-range positions are skipped.
func ExtractChars(line string, positions []Range) string {
	runes := []rune(line)
	var out []rune
	for _, r := range positions {
		start, end := clamp(r, len(runes))
		out = append(out, runes[start:end]...)
	}
	return string(out)
}

// ExtractBytes selects raw bytes from line; sequences broken mid-rune are
// replaced with the Unicode replacement character.
func ExtractBytes(line string, positions []Range) string {
	var out []byte
	for _, r := range positions {
		start, end := clamp(r, len(line))
		out = append(out, line[start:end]...)
	}
	return strings.ToValidUTF8(string(out), "�")
}

// ExtractFields selects already-split fields, range by range.
func ExtractFields(fields []string, positions []Range) []string {
	var out []string
	for _, r := range positions {
		start, end := clamp(r, len(fields))
		out = append(out, fields[start:end]...)
	}
	return out
}
