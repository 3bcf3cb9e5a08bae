//go:build tetrads

package core

import "fmt"

// Precision2Km addresses a 2km tetrad cell, the precision of every
// parsed tetrad reference. It exists only with tetrad support compiled
// in, so a 2km value can never reach the formatter on builds that lack
// the tetrad rendering path.
const Precision2Km = precision2Km

// Tetrad (DINTY) support: a 10km square subdivides into 25 lettered 2km
// cells. The tetrad grid runs column-major from the bottom-left cell A,
// skipping O; laid out row-major from the bottom it reads as below. The
// scheme takes its name from the fourth row: D I N T Y.
var tetradGrid = [gridWidth * gridWidth]rune{
	'A', 'F', 'K', 'Q', 'V',
	'B', 'G', 'L', 'R', 'W',
	'C', 'H', 'M', 'S', 'X',
	'D', 'I', 'N', 'T', 'Y',
	'E', 'J', 'P', 'U', 'Z',
}

// TetradToCoords returns the zero-based (column, row) of the given
// tetrad letter within its 10km square.
// Returns ErrParse if the letter is not on the tetrad grid.
func TetradToCoords(tetrad rune) (column, row int, err error) {
	for i, t := range tetradGrid {
		if t == tetrad {
			return i % gridWidth, i / gridWidth, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: %c is not a valid tetrad", ErrParse, tetrad)
}

// CoordsToTetrad returns the tetrad letter at the zero-based
// (column, row) within a 10km square.
// Returns ErrOutOfBounds if column or row is outside the 5×5 grid.
func CoordsToTetrad(column, row int) (rune, error) {
	if column < 0 || column >= gridWidth || row < 0 || row >= gridWidth {
		return 0, ErrOutOfBounds
	}

	return tetradGrid[column+gridWidth*row], nil
}

// parseTetrad handles the tetrad shape of a point's suffix: exactly one
// digit pair plus a trailing tetrad letter, e.g. "24R". Reports ok=false
// for any other shape so ordinary digit parsing can proceed.
// baseEastings / baseNorthings are the 100km square's offsets.
func parseTetrad(s string, baseEastings, baseNorthings uint32) (Point, bool, error) {
	if len(s) != 3 {
		return Point{}, false, nil
	}
	c := rune(s[2])
	if c < 'A' || c > 'Z' {
		return Point{}, false, nil
	}

	column, row, err := TetradToCoords(c)
	if err != nil {
		return Point{}, true, err
	}
	eastings := baseEastings + uint32(column)*metres2Km
	northings := baseNorthings + uint32(row)*metres2Km

	east, north, _, err := SplitDigits(s[:2])
	if err != nil {
		return Point{}, true, err
	}

	em, err := NewMetres(eastings + east)
	if err != nil {
		return Point{}, true, err
	}
	nm, err := NewMetres(northings + north)
	if err != nil {
		return Point{}, true, err
	}

	return Point{eastings: em, northings: nm, precision: Precision2Km}, true, nil
}

// formatTetrad renders a 2km point's suffix: the 10km digit pair plus
// the tetrad letter. Reports ok=false at any other precision.
func formatTetrad(p Point) (string, bool) {
	if p.precision != Precision2Km {
		return "", false
	}

	// Metres are bounds checked, so the tetrad lookup cannot fail.
	column := int(p.eastings.Uint32() % metres10Km / metres2Km)
	row := int(p.northings.Uint32() % metres10Km / metres2Km)
	tetrad, _ := CoordsToTetrad(column, row)

	return p.eastings.Padded(Precision10Km) + p.northings.Padded(Precision10Km) + string(tetrad), true
}
