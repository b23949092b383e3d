package game

import (
	"fmt"
	"strings"
)

// Ending is the fixed closing grid shown after the last level.
// Spaces are blank slots.
type Ending struct {
	Rows []string
}

// DefaultEnding spells the closing message over seven rows of seven slots.
func DefaultEnding() Ending {
	return Ending{Rows: []string{
		"amor da",
		" minha ",
		" vida  ",
		" voce  ",
		"aceita ",
		"namorar",
		"comigo?",
	}}
}

// Size returns the grid width and number of rows.
func (e Ending) Size() (width, rows int) {
	if len(e.Rows) == 0 {
		return 0, 0
	}
	return len([]rune(e.Rows[0])), len(e.Rows)
}

// Cells returns the slots in row-major order; blank slots are zero.
func (e Ending) Cells() []rune {
	var cells []rune
	for _, row := range e.Rows {
		for _, r := range row {
			if r == ' ' {
				r = 0
			}
			cells = append(cells, r)
		}
	}
	return cells
}

// Validate checks that every row has the same width.
func (e Ending) Validate() error {
	width, _ := e.Size()
	if width == 0 {
		return fmt.Errorf("game: ending must have at least one non-empty row")
	}
	for i, row := range e.Rows {
		if n := len([]rune(row)); n != width {
			return fmt.Errorf("game: ending row %d %q has %d slots, expected %d", i+1, strings.TrimSpace(row), n, width)
		}
	}
	return nil
}
