//go:build !tetrads

package core

// Tetrad (DINTY) support is compiled in with the "tetrads" build tag.
// Without it, a would-be tetrad suffix like "24R" falls through to
// ordinary digit parsing and is rejected for its odd length.

func parseTetrad(string, uint32, uint32) (Point, bool, error) {
	return Point{}, false, nil
}

func formatTetrad(Point) (string, bool) {
	return "", false
}
