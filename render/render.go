// Package render draws vertex sets of two-dimensional lattices as text.
package render

import (
	"strings"

	"github.com/katalvlaran/knightsliars/builder"
)

const (
	markedCell   = "o"
	unmarkedCell = "."
	cellSep      = " "
)

// TextPlot renders a rows×cols window of a lattice with "r,c" vertex IDs.
// Marked cells print as "o", others as "."; cells are separated by a
// space and every row ends with a newline. IDs that are not two-coordinate
// IDs, or that fall outside the window, are ignored.
func TextPlot(rows, cols int, marked []string) string {
	if rows <= 0 || cols <= 0 {
		return ""
	}
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
	}
	for _, id := range marked {
		pos, err := builder.ParseCoordID(id)
		if err != nil || len(pos) != 2 {
			continue
		}
		r, c := pos[0], pos[1]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			continue
		}
		grid[r][c] = true
	}

	var b strings.Builder
	b.Grow(rows * cols * 2)
	for _, row := range grid {
		for c, on := range row {
			if c > 0 {
				b.WriteString(cellSep)
			}
			if on {
				b.WriteString(markedCell)
			} else {
				b.WriteString(unmarkedCell)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
