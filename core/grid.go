package core

import "fmt"

// The 5×5 letter grid used by grid references to index both 100km and
// 500km squares. The origin is at the bottom-left square: V. The letter
// I is skipped, so the alphabet's remaining 25 letters fit exactly.
const gridWidth = 5

var grid = [gridWidth * gridWidth]rune{
	'V', 'W', 'X', 'Y', 'Z',
	'Q', 'R', 'S', 'T', 'U',
	'L', 'M', 'N', 'O', 'P',
	'F', 'G', 'H', 'J', 'K',
	'A', 'B', 'C', 'D', 'E',
}

// SquareToCoords returns the zero-based (column, row) of the given grid
// square letter. The lookup is scale agnostic, so H => (2, 3) whether H
// names a 100km or a 500km square.
// Returns ErrParse if the letter is not on the grid.
// Complexity: O(1) against the fixed 25-entry table.
func SquareToCoords(square rune) (column, row int, err error) {
	for i, s := range grid {
		if s == square {
			return i % gridWidth, i / gridWidth, nil
		}
	}

	return 0, 0, fmt.Errorf("%w: %c is not a valid grid square", ErrParse, square)
}

// CoordsToSquare returns the grid square letter at the zero-based
// (column, row). Scale agnostic, so (1, 1) => R.
// Returns ErrOutOfBounds if column or row is outside the 5×5 grid.
// Complexity: O(1).
func CoordsToSquare(column, row int) (rune, error) {
	if column < 0 || column >= gridWidth || row < 0 || row >= gridWidth {
		return 0, ErrOutOfBounds
	}

	return grid[column+gridWidth*row], nil
}
