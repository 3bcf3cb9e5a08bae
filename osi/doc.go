// Package osi implements Irish National Grid references (OSI),
// converting between strings like "O892437" and eastings / northings.
//
// What:
//
//   - OSI represents a valid Irish grid reference at one of the
//     supported precisions (100km, 10km, 1km, 100m, 10m, 1m).
//   - Parse / String convert between the canonical string form and the
//     reference; New builds one from raw eastings / northings.
//   - Recalculate re-maps a reference to a coarser precision.
//   - SW / NW / NE / SE / Centre / Perimeter expose the cell's geometry.
//
// Why:
//
//   - The Irish grid is a single 500km square indexed directly by the
//     shared 5×5 letter grid: no super-square layer, no origin offset,
//     no letter whitelist. OSI is therefore a thin composition over
//     core.Point.
//
// Errors:
//
//   - core.ErrParse: malformed input.
//   - core.ErrOutOfBounds: coordinates beyond the 500km extent.
//
// See: osgb for the British grid, which adds the 500km super-squares.
package osi
