package core_test

import (
	"errors"
	"testing"

	"github.com/cartolane/gridref/core"
)

// validSquares pins every letter of the 5×5 grid to its (column, row).
var validSquares = []struct {
	letter rune
	column int
	row    int
}{
	{'A', 0, 4}, {'B', 1, 4}, {'C', 2, 4}, {'D', 3, 4}, {'E', 4, 4},
	{'F', 0, 3}, {'G', 1, 3}, {'H', 2, 3}, {'J', 3, 3}, {'K', 4, 3},
	{'L', 0, 2}, {'M', 1, 2}, {'N', 2, 2}, {'O', 3, 2}, {'P', 4, 2},
	{'Q', 0, 1}, {'R', 1, 1}, {'S', 2, 1}, {'T', 3, 1}, {'U', 4, 1},
	{'V', 0, 0}, {'W', 1, 0}, {'X', 2, 0}, {'Y', 3, 0}, {'Z', 4, 0},
}

// TestSquareToCoords verifies the letter → coordinate direction over the
// whole grid.
func TestSquareToCoords(t *testing.T) {
	for _, sq := range validSquares {
		column, row, err := core.SquareToCoords(sq.letter)
		if err != nil {
			t.Fatalf("SquareToCoords(%c) error: %v", sq.letter, err)
		}
		if column != sq.column || row != sq.row {
			t.Errorf("SquareToCoords(%c) = (%d,%d); want (%d,%d)",
				sq.letter, column, row, sq.column, sq.row)
		}
	}
}

// TestSquareToCoords_Invalid verifies lowercase, skipped and non-letter
// runes are rejected with ErrParse.
func TestSquareToCoords_Invalid(t *testing.T) {
	for _, letter := range []rune{'a', 'I', '0', '@'} {
		_, _, err := core.SquareToCoords(letter)
		if !errors.Is(err, core.ErrParse) {
			t.Errorf("SquareToCoords(%c) error = %v; want ErrParse", letter, err)
		}
	}
}

// TestCoordsToSquare verifies the coordinate → letter direction over the
// whole grid, closing the bijection with TestSquareToCoords.
func TestCoordsToSquare(t *testing.T) {
	for _, sq := range validSquares {
		letter, err := core.CoordsToSquare(sq.column, sq.row)
		if err != nil {
			t.Fatalf("CoordsToSquare(%d,%d) error: %v", sq.column, sq.row, err)
		}
		if letter != sq.letter {
			t.Errorf("CoordsToSquare(%d,%d) = %c; want %c", sq.column, sq.row, letter, sq.letter)
		}
	}
}

// TestCoordsToSquare_OutOfBounds verifies positions off the 5×5 grid are
// rejected with ErrOutOfBounds.
func TestCoordsToSquare_OutOfBounds(t *testing.T) {
	coords := [][2]int{{0, 5}, {5, 0}, {-1, 0}, {0, -1}}
	for _, c := range coords {
		if _, err := core.CoordsToSquare(c[0], c[1]); !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("CoordsToSquare(%d,%d) error = %v; want ErrOutOfBounds", c[0], c[1], err)
		}
	}
}
