package osi

import (
	"github.com/cartolane/gridref/core"
)

// OSI is a valid Irish National Grid reference. Build one with New or
// Parse; the zero value is not meaningful.
//
// An OSI is a simple wrapper around core.Point: the grid covers a
// single 500km square, so the point's own letter codec is the whole
// story. It is an immutable value: Recalculate returns a new reference.
type OSI struct {
	point core.Point
}

// New creates a grid reference from eastings / northings, truncated to
// the given precision.
// Returns core.ErrOutOfBounds if either coordinate reaches 500km.
func New(eastings, northings uint32, precision core.Precision) (OSI, error) {
	em, err := core.NewMetres(eastings)
	if err != nil {
		return OSI{}, err
	}
	nm, err := core.NewMetres(northings)
	if err != nil {
		return OSI{}, err
	}

	return OSI{point: core.NewPoint(em, nm, precision)}, nil
}

// Parse reads a grid reference string such as "O892437". ASCII
// whitespace is stripped and letters uppercased first; the whole
// remaining string is handed to the shared square codec.
func Parse(s string) (OSI, error) {
	point, err := core.ParsePoint(core.Normalize(s))
	if err != nil {
		return OSI{}, err
	}

	return OSI{point: point}, nil
}

// Recalculate returns a copy of the reference at the new precision.
// Recalculation only ever loses resolution: requesting a precision finer
// than the current one returns the reference unchanged.
func (o OSI) Recalculate(precision core.Precision) OSI {
	if precision > o.point.Precision() {
		return o
	}

	return OSI{point: o.point.Recalculate(precision)}
}

// Precision returns the reference's precision.
func (o OSI) Precision() core.Precision {
	return o.point.Precision()
}

// SW returns the reference cell's south-west corner — its origin.
func (o OSI) SW() core.Coord {
	return core.Coord{
		Easting:  float64(o.point.Eastings().Uint32()),
		Northing: float64(o.point.Northings().Uint32()),
	}
}

// NW returns the reference cell's north-west corner.
func (o OSI) NW() core.Coord {
	return core.Coord{
		Easting:  float64(o.point.Eastings().Uint32()),
		Northing: float64(o.point.Northings().Uint32() + o.point.Precision().Metres()),
	}
}

// NE returns the reference cell's north-east corner.
func (o OSI) NE() core.Coord {
	return core.Coord{
		Easting:  float64(o.point.Eastings().Uint32() + o.point.Precision().Metres()),
		Northing: float64(o.point.Northings().Uint32() + o.point.Precision().Metres()),
	}
}

// SE returns the reference cell's south-east corner.
func (o OSI) SE() core.Coord {
	return core.Coord{
		Easting:  float64(o.point.Eastings().Uint32() + o.point.Precision().Metres()),
		Northing: float64(o.point.Northings().Uint32()),
	}
}

// Centre returns the reference cell's centre.
func (o OSI) Centre() core.Coord {
	half := float64(o.point.Precision().Metres()) / 2

	return core.Coord{
		Easting:  float64(o.point.Eastings().Uint32()) + half,
		Northing: float64(o.point.Northings().Uint32()) + half,
	}
}

// Perimeter returns the cell's four corners in SW, NW, NE, SE order,
// without a closing duplicate.
func (o OSI) Perimeter() []core.Coord {
	return []core.Coord{o.SW(), o.NW(), o.NE(), o.SE()}
}

// String renders the canonical grid reference: the 100km square letter
// followed by the precision's digit pairs.
func (o OSI) String() string {
	return o.point.String()
}
