package osgb

import (
	"fmt"
	"unicode/utf8"

	"github.com/cartolane/gridref/core"
)

// The 500km super-grid's geometry: square span and the grid's offset
// from the true origin. The offset places the origin of square S at
// (0, 0), so the whole landmass keeps positive coordinates.
const (
	squareSize  uint32 = 500_000
	offsetEast  uint32 = 2 * squareSize
	offsetNorth uint32 = squareSize
)

// OSGB is a valid British National Grid reference. Build one with New
// or Parse; the zero value is not meaningful.
//
// An OSGB is primarily a wrapper over core.Point, with additional logic
// for the 500km super-squares and their offset origin. It is an
// immutable value: Recalculate returns a new reference.
type OSGB struct {
	square500kEast  uint32
	square500kNorth uint32
	point           core.Point
}

// valid500k reports whether square names one of the five 500km squares
// the British grid actually uses.
func valid500k(square rune) bool {
	switch square {
	case 'S', 'T', 'N', 'O', 'H':
		return true
	}

	return false
}

// New creates a grid reference from true-origin eastings / northings,
// truncated to the given precision.
//
// Returns core.ErrParse if the coordinates land on a 500km square
// outside {S, T, N, O, H}, and core.ErrOutOfBounds if they leave the
// letter grid entirely.
func New(eastings, northings uint32, precision core.Precision) (OSGB, error) {
	// The 500km column and row, counted from the true origin.
	square500kEast := (uint64(eastings) + uint64(offsetEast)) / uint64(squareSize)
	square500kNorth := (uint64(northings) + uint64(offsetNorth)) / uint64(squareSize)

	square, err := core.CoordsToSquare(int(square500kEast), int(square500kNorth))
	if err != nil {
		return OSGB{}, err
	}
	if !valid500k(square) {
		return OSGB{}, fmt.Errorf("%w: %c is not a supported 500km square", core.ErrParse, square)
	}

	// Remainders are below 500km, so the conversions cannot fail.
	em, _ := core.NewMetres(eastings % squareSize)
	nm, _ := core.NewMetres(northings % squareSize)

	return OSGB{
		square500kEast:  uint32(square500kEast),
		square500kNorth: uint32(square500kNorth),
		point:           core.NewPoint(em, nm, precision),
	}, nil
}

// Parse reads a grid reference string such as "SO892437". ASCII
// whitespace is stripped and letters uppercased first, so " so 892 437 "
// parses equally. The first letter selects the 500km square, the rest is
// handed to the shared square codec.
//
// Returns core.ErrParse for malformed input, including a 500km square
// outside {S, T, N, O, H}.
func Parse(s string) (OSGB, error) {
	s = core.Normalize(s)
	if s == "" {
		return OSGB{}, fmt.Errorf("%w: string cannot be empty", core.ErrParse)
	}

	c, size := utf8.DecodeRuneInString(s)
	column, row, err := core.SquareToCoords(c)
	if err != nil {
		return OSGB{}, err
	}
	if !valid500k(c) {
		return OSGB{}, fmt.Errorf("%w: %c is not a supported 500km square", core.ErrParse, c)
	}

	point, err := core.ParsePoint(s[size:])
	if err != nil {
		return OSGB{}, err
	}

	return OSGB{
		square500kEast:  uint32(column),
		square500kNorth: uint32(row),
		point:           point,
	}, nil
}

// Recalculate returns a copy of the reference at the new precision.
// Recalculation only ever loses resolution: requesting a precision finer
// than the current one returns the reference unchanged.
func (o OSGB) Recalculate(precision core.Precision) OSGB {
	if precision > o.point.Precision() {
		return o
	}

	return OSGB{
		square500kEast:  o.square500kEast,
		square500kNorth: o.square500kNorth,
		point:           o.point.Recalculate(precision),
	}
}

// Precision returns the reference's precision.
func (o OSGB) Precision() core.Precision {
	return o.point.Precision()
}

// SW returns the reference cell's south-west corner — its origin.
func (o OSGB) SW() core.Coord {
	return core.Coord{Easting: float64(o.eastings()), Northing: float64(o.northings())}
}

// NW returns the reference cell's north-west corner.
func (o OSGB) NW() core.Coord {
	return core.Coord{
		Easting:  float64(o.eastings()),
		Northing: float64(o.northings() + o.point.Precision().Metres()),
	}
}

// NE returns the reference cell's north-east corner.
func (o OSGB) NE() core.Coord {
	return core.Coord{
		Easting:  float64(o.eastings() + o.point.Precision().Metres()),
		Northing: float64(o.northings() + o.point.Precision().Metres()),
	}
}

// SE returns the reference cell's south-east corner.
func (o OSGB) SE() core.Coord {
	return core.Coord{
		Easting:  float64(o.eastings() + o.point.Precision().Metres()),
		Northing: float64(o.northings()),
	}
}

// Centre returns the reference cell's centre.
func (o OSGB) Centre() core.Coord {
	half := float64(o.point.Precision().Metres()) / 2

	return core.Coord{
		Easting:  float64(o.eastings()) + half,
		Northing: float64(o.northings()) + half,
	}
}

// Perimeter returns the cell's four corners in SW, NW, NE, SE order,
// without a closing duplicate.
func (o OSGB) Perimeter() []core.Coord {
	return []core.Coord{o.SW(), o.NW(), o.NE(), o.SE()}
}

// String renders the canonical grid reference: 500km square letter,
// 100km square letter, then the precision's digit pairs.
func (o OSGB) String() string {
	// Squares were validated at construction, so the lookup cannot fail.
	square, _ := core.CoordsToSquare(int(o.square500kEast), int(o.square500kNorth))

	return string(square) + o.point.String()
}

// eastings returns the true-origin eastings.
func (o OSGB) eastings() uint32 {
	return o.square500kEast*squareSize - offsetEast + o.point.Eastings().Uint32()
}

// northings returns the true-origin northings.
func (o OSGB) northings() uint32 {
	return o.square500kNorth*squareSize - offsetNorth + o.point.Northings().Uint32()
}
