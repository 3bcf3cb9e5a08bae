// Package core defines the central Precision, Metres, Point and Coord
// types, and provides the letter-grid and digit-splitting primitives
// for building grid reference codecs.
//
// All core types are immutable values; every transformation returns a
// new value, so instances are freely shareable across goroutines.
//
// This file declares Precision, Coord, the metre-span constants and the
// sentinel errors.
//
// Errors:
//
//	ErrParse            - input string is not a valid grid reference.
//	ErrInvalidPrecision - digit count has no precision mapping.
//	ErrOutOfBounds      - coordinate value outside the 500km domain.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid reference operations.
var (
	// ErrParse indicates malformed input: an unknown grid square letter,
	// an unsupported digit count, non-numeric digits or an empty string.
	ErrParse = errors.New("core: invalid grid reference")

	// ErrInvalidPrecision indicates a digit count with no precision
	// mapping. Digit counts are validated before the mapping is consulted,
	// so this is unreachable from external input; it exists to keep the
	// mapping's failure mode distinguishable from ordinary parse errors.
	ErrInvalidPrecision = errors.New("core: invalid precision")

	// ErrOutOfBounds indicates a numerically valid coordinate that falls
	// outside the 500km coordinate domain.
	ErrOutOfBounds = errors.New("core: coordinate out of bounds")
)

// Metre spans of the supported precisions, plus the 500km domain size
// and the 2km tetrad cell span.
const (
	metres500Km uint32 = 500_000
	metres100Km uint32 = 100_000
	metres10Km  uint32 = 10_000
	metres2Km   uint32 = 2_000
	metres1Km   uint32 = 1_000
	metres100M  uint32 = 100
	metres10M   uint32 = 10
	metres1M    uint32 = 1
)

// Precision is the resolution of a grid reference, expressed as a metre
// span per digit pair. The zero value is the coarsest (a whole 100km
// square); greater values are finer.
type Precision uint8

// Values are explicit so the ordering stays stable whether or not the
// tetrad level is compiled in.
const (
	// Precision100Km addresses a whole 100km square (no digits).
	Precision100Km Precision = 0
	// Precision10Km addresses a 10km square (2 digits).
	Precision10Km Precision = 1
	// Precision1Km addresses a 1km square (4 digits).
	Precision1Km Precision = 3
	// Precision100M addresses a 100m square (6 digits).
	Precision100M Precision = 4
	// Precision10M addresses a 10m square (8 digits).
	Precision10M Precision = 5
	// Precision1M addresses a 1m square (10 digits).
	Precision1M Precision = 6
)

// precision2Km addresses a 2km tetrad cell. It is a pseudo-level: never
// inferred from a digit count, only produced by tetrad parsing. The
// exported name is declared with the "tetrads" build tag (see tetrad.go)
// so the level is unrepresentable when the feature is compiled out; the
// value slots between 10km and 1km to keep coarse-to-fine ordering.
const precision2Km Precision = 2

// Metres returns the precision's cell span in metres.
func (p Precision) Metres() uint32 {
	switch p {
	case Precision100Km:
		return metres100Km
	case Precision10Km:
		return metres10Km
	case precision2Km:
		return metres2Km
	case Precision1Km:
		return metres1Km
	case Precision100M:
		return metres100M
	case Precision10M:
		return metres10M
	default:
		return metres1M
	}
}

// Digits returns the number of digits needed to represent a grid
// reference at this precision. The 2km tetrad level reports 2: a tetrad
// reference carries one 10km digit pair beside its trailing letter.
func (p Precision) Digits() int {
	switch p {
	case Precision100Km:
		return 0
	case Precision10Km, precision2Km:
		return 2
	case Precision1Km:
		return 4
	case Precision100M:
		return 6
	case Precision10M:
		return 8
	default:
		return 10
	}
}

// String implements fmt.Stringer.
func (p Precision) String() string {
	switch p {
	case Precision100Km:
		return "100km"
	case Precision10Km:
		return "10km"
	case precision2Km:
		return "2km"
	case Precision1Km:
		return "1km"
	case Precision100M:
		return "100m"
	case Precision10M:
		return "10m"
	case Precision1M:
		return "1m"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// Coord is an absolute easting / northing pair in metres, used for the
// corners and centre of a reference's cell. Centres of odd-span cells
// land on half metres, hence float64.
type Coord struct {
	Easting  float64
	Northing float64
}
