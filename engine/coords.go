package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell coordinates:
// - Columns: a-c (left to right)
// - Rows: 1-3 (top to bottom)
// - Example: a1 is index 0, b2 is index 4, c3 is index 8
//
// A bare index 0-8 is accepted as well.

// ParseCell converts "b2" or "4" style input to a board index.
func ParseCell(s string) (int, error) {
	s = strings.TrimSpace(strings.ToLower(s))

	if len(s) == 1 {
		idx, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
		}
		return idx, nil
	}

	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}

	col := int(s[0] - 'a')
	row := int(s[1] - '1')
	if col < 0 || col > 2 || row < 0 || row > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	return row*3 + col, nil
}

// CellName converts a board index to its coordinate, e.g. 4 -> "b2".
// Returns "?" for indices off the board.
func CellName(index int) string {
	if index < 0 || index > 8 {
		return "?"
	}
	return fmt.Sprintf("%c%d", 'a'+index%3, index/3+1)
}
