// Package core implements the shared machinery of the British and Irish
// national grid codecs: precision arithmetic, bounded metre values, the
// 5×5 letter grid, digit splitting and the within-square Point codec.
//
// What:
//
//   - Precision enumerates the supported resolutions (100km … 1m) and maps
//     each to a metre span and a digit count.
//   - Metres wraps a bounds-checked coordinate value inside one 500km
//     square, with precision truncation and zero-padded digit rendering.
//   - SquareToCoords / CoordsToSquare convert between grid letters and
//     zero-based (column, row) positions on the 5×5 letter grid.
//   - SplitDigits parses a grid reference's digit suffix into an
//     eastings / northings offset pair plus its inferred precision.
//   - Point combines two Metres values with a Precision and owns the
//     square-letter parse / format algorithm shared by both grids.
//
// Why:
//
//   - Both national grids index 100km squares with the same 5×5 letter
//     scheme; the British grid merely layers a second, offset 500km grid
//     on top. Keeping the square codec here lets osgb and osi stay thin.
//
// Errors:
//
//   - ErrParse: malformed input (bad letter, wrong digit count, empty string).
//   - ErrInvalidPrecision: a digit-count with no precision mapping; kept
//     distinct from ErrParse for diagnostics, unreachable from valid input.
//   - ErrOutOfBounds: a numerically valid coordinate outside the 500km domain.
//
// A tetrad (DINTY) sub-division of 10km squares into 2km cells is
// available behind the "tetrads" build tag; see tetrad.go.
package core
