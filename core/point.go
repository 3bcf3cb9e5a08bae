package core

import (
	"fmt"
	"unicode/utf8"
)

// Point is the core of both national grids: a coordinate that can
// address any location on a 500km grid at up to 1m precision. It is
// made up of eastings, northings and the precision, with both
// coordinates truncated to the precision at construction.
type Point struct {
	eastings  Metres
	northings Metres
	precision Precision
}

// NewPoint builds a Point from bounds-checked coordinates, truncating
// both to the given precision.
func NewPoint(eastings, northings Metres, precision Precision) Point {
	return Point{
		eastings:  eastings.Truncate(precision),
		northings: northings.Truncate(precision),
		precision: precision,
	}
}

// Eastings returns the point's eastings within its 500km square.
func (p Point) Eastings() Metres {
	return p.eastings
}

// Northings returns the point's northings within its 500km square.
func (p Point) Northings() Metres {
	return p.northings
}

// Precision returns the point's precision.
func (p Point) Precision() Precision {
	return p.precision
}

// Recalculate returns a copy of the point re-truncated to the new
// precision. Truncation only ever loses resolution; callers that refuse
// to upscale enforce that ordering themselves.
func (p Point) Recalculate(precision Precision) Point {
	return NewPoint(p.eastings, p.northings, precision)
}

// ParsePoint parses a square letter plus digit suffix, e.g. "O892437".
// The leading letter selects a 100km square; the remaining digits refine
// the position inside it (see SplitDigits).
//
// With the "tetrads" build tag, a 4-character string whose last rune is
// a letter is instead read as {digit pair}+{tetrad letter} addressing a
// 2km cell.
//
// Returns ErrParse for an empty string, an unknown square letter or bad
// digits, and ErrOutOfBounds if the computed coordinates leave the
// 500km domain.
func ParsePoint(s string) (Point, error) {
	if s == "" {
		return Point{}, fmt.Errorf("%w: string cannot be empty", ErrParse)
	}

	c, size := utf8.DecodeRuneInString(s)
	column, row, err := SquareToCoords(c)
	if err != nil {
		return Point{}, err
	}
	eastings := uint32(column) * metres100Km
	northings := uint32(row) * metres100Km

	if p, ok, err := parseTetrad(s[size:], eastings, northings); ok || err != nil {
		return p, err
	}

	east, north, precision, err := SplitDigits(s[size:])
	if err != nil {
		return Point{}, err
	}

	em, err := NewMetres(eastings + east)
	if err != nil {
		return Point{}, err
	}
	nm, err := NewMetres(northings + north)
	if err != nil {
		return Point{}, err
	}

	return Point{eastings: em, northings: nm, precision: precision}, nil
}

// String renders the point as its canonical grid reference: the 100km
// square letter followed by the precision's digit pairs.
func (p Point) String() string {
	// Metres are bounds checked, so the letter lookup cannot fail.
	column := int(p.eastings.Uint32() / metres100Km)
	row := int(p.northings.Uint32() / metres100Km)
	letter, _ := CoordsToSquare(column, row)

	if suffix, ok := formatTetrad(p); ok {
		return string(letter) + suffix
	}

	return string(letter) + p.eastings.Padded(p.precision) + p.northings.Padded(p.precision)
}
