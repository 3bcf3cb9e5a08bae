package core

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitDigits converts the digit suffix of a grid reference into an
// eastings / northings offset pair plus the precision the digit count
// implies. The string splits in half: eastings first, northings second.
// Each offset is scaled to metres, so "892437" => (89200, 43700, 100m).
//
// Returns ErrParse if the length is odd or above 10, or if either half
// fails to parse as an unsigned integer.
func SplitDigits(s string) (eastings, northings uint32, precision Precision, err error) {
	if len(s) > 10 || len(s)%2 != 0 {
		return 0, 0, 0, fmt.Errorf(
			"%w: %d is not a valid number of digits. Supported values: 0, 2, 4, 6, 8, 10.",
			ErrParse, len(s),
		)
	}

	if s != "" {
		half := len(s) / 2

		e, perr := strconv.ParseUint(s[:half], 10, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %v", ErrParse, perr)
		}
		n, perr := strconv.ParseUint(s[half:], 10, 32)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %v", ErrParse, perr)
		}

		eastings, northings = uint32(e), uint32(n)
	}

	switch len(s) {
	case 0:
		precision = Precision100Km
	case 2:
		precision = Precision10Km
	case 4:
		precision = Precision1Km
	case 6:
		precision = Precision100M
	case 8:
		precision = Precision10M
	case 10:
		precision = Precision1M
	default:
		return 0, 0, 0, fmt.Errorf("%w: no precision for %d digits", ErrInvalidPrecision, len(s))
	}

	return eastings * precision.Metres(), northings * precision.Metres(), precision, nil
}

// Normalize strips all ASCII whitespace from s and uppercases the rest,
// preparing user input for parsing.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		b.WriteRune(c)
	}

	return b.String()
}
