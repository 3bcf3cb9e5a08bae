// Package osgb implements British National Grid references (OSGB),
// converting between strings like "SO892437" and eastings / northings.
//
// What:
//
//   - OSGB represents a valid British grid reference at one of the
//     supported precisions (100km, 10km, 1km, 100m, 10m, 1m).
//   - Parse / String convert between the canonical string form and the
//     reference; New builds one from raw eastings / northings.
//   - Recalculate re-maps a reference to a coarser precision.
//   - SW / NW / NE / SE / Centre / Perimeter expose the cell's geometry.
//
// Why:
//
//   - The British grid layers a 500km super-grid on top of the shared
//     100km letter squares, offset from the true origin so the first
//     letter of a reference lands on S, T, N, O or H. This package owns
//     that layer; everything inside a 500km square lives in core.
//
// Errors:
//
//   - core.ErrParse: malformed or unsupported input, including a 500km
//     square outside {S, T, N, O, H}.
//   - core.ErrOutOfBounds: coordinates beyond the grid's extent.
//
// See: osi for the Irish grid, which has no super-square layer.
package osgb
