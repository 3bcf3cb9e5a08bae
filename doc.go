// Package gridref converts between alphanumeric national grid references
// and numeric eastings / northings, at a selectable precision — from whole
// 100km squares down to single metres.
//
// What is gridref?
//
//	A small, pure-Go codec for the British (OSGB) and Irish (OSI) national
//	mapping grids:
//		• Parse a grid reference string into eastings / northings
//		• Print eastings / northings back as a canonical grid reference
//		• Recalculate a reference to a coarser precision
//		• Read the four corners, centre and perimeter of a reference's cell
//
// Why choose gridref?
//
//   - Minimal API, clear naming — two reference types, one precision enum
//   - Immutable value types — share freely across goroutines, no locks needed
//   - Pure Go — no cgo, no hidden deps
//   - Strict validation — a reference is either fully valid or rejected
//
// Everything is organized under three subpackages:
//
//	core/ — precision, bounded metre values, the 5×5 letter grid and the
//	        shared within-square point codec
//	osgb/ — British National Grid references (500km super-squares S,T,N,O,H)
//	osi/  — Irish National Grid references (single-letter squares)
//
// Quick ASCII example:
//
//	    "SO892437"  ⇄  (389200 E, 243700 N) @ 100m
//
// gridref intentionally does not convert between coordinate systems; it
// exists solely to fill the gap between numerical coordinates in eastings /
// northings and their textual representations.
//
//	go get github.com/cartolane/gridref
package gridref
