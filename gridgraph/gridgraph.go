// Package gridgraph converts 2D cell grids into *core.Graph lattices.
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knightsliars/builder"
	"github.com/katalvlaran/knightsliars/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("NewGridGraph: %w", ErrEmptyGrid)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("NewGridGraph: row length %d, want %d: %w", len(row), w, ErrNonRectangular)
		}
	}
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}
	// Forward offsets only (row, col): each undirected edge is emitted once.
	offsets := [][2]int{{0, 1}, {1, 0}}
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, 1}, {1, -1}, {1, 0}, {1, 1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Values:          cells,
		Conn:            opts.Conn,
		CellThreshold:   opts.CellThreshold,
		neighborOffsets: offsets,
	}, nil
}

// ParseMask reads a text board: '#', 'o' or '1' mark a cell, '.', '0' or
// '_' mark a hole; spaces are ignored so TextPlot output parses back.
func ParseMask(rows []string, conn Connectivity) (*GridGraph, error) {
	values := make([][]int, 0, len(rows))
	for r, line := range rows {
		line = strings.ReplaceAll(line, " ", "")
		row := make([]int, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '#', 'o', '1':
				row = append(row, 1)
			case '.', '0', '_':
				row = append(row, 0)
			default:
				return nil, fmt.Errorf("ParseMask: row %d col %d %q: %w", r, c, ch, ErrBadCell)
			}
		}
		values = append(values, row)
	}

	return NewGridGraph(values, GridOptions{CellThreshold: 1, Conn: conn})
}

// InBounds reports whether (row, col) lies within the grid boundaries.
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// IsCell reports whether (row, col) is in bounds and at or above the threshold.
func (gg *GridGraph) IsCell(row, col int) bool {
	return gg.InBounds(row, col) && gg.Values[row][col] >= gg.CellThreshold
}

// CellCount returns the number of cells that become vertices.
func (gg *GridGraph) CellCount() int {
	n := 0
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if gg.IsCell(r, c) {
				n++
			}
		}
	}

	return n
}

// ToCoreGraph converts the board into an undirected *core.Graph. Each cell
// becomes a vertex "row,col"; edges join neighbouring cells under gg.Conn.
// Complexity: O(W×H×d) time, O(W×H + E) memory.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if !gg.IsCell(r, c) {
				continue
			}
			if err := g.AddVertex(builder.CoordID(r, c)); err != nil {
				return nil, fmt.Errorf("ToCoreGraph: %w", err)
			}
		}
	}
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			if !gg.IsCell(r, c) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !gg.IsCell(nr, nc) {
					continue
				}
				if err := g.AddEdge(builder.CoordID(r, c), builder.CoordID(nr, nc)); err != nil {
					return nil, fmt.Errorf("ToCoreGraph: %w", err)
				}
			}
		}
	}

	return g, nil
}
