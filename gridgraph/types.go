package gridgraph

import "errors"

var (
	// ErrEmptyGrid is returned for a board without rows or columns.
	ErrEmptyGrid = errors.New("gridgraph: empty board")
	// ErrNonRectangular is returned when rows differ in length.
	ErrNonRectangular = errors.New("gridgraph: rows differ in length")
	// ErrBadCell is returned for a mask rune that is neither cell nor hole.
	ErrBadCell = errors.New("gridgraph: unrecognised mask cell")
)

// Connectivity decides which cells of a board are adjacent.
type Connectivity int

const (
	// Conn4 joins orthogonal neighbours.
	Conn4 Connectivity = iota
	// Conn8 also joins diagonal neighbours (king moves).
	Conn8
)

// GridOptions configures NewGridGraph.
type GridOptions struct {
	// CellThreshold is the smallest value that counts as a cell; smaller
	// values are holes.
	CellThreshold int
	Conn          Connectivity
}

// DefaultGridOptions: values ≥ 1 are cells, Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{CellThreshold: 1, Conn: Conn4}
}

// GridGraph is a rectangular board with holes. Values keeps the input
// grid; a position is a vertex iff its value reaches CellThreshold.
// A GridGraph is not modified after construction.
type GridGraph struct {
	Width, Height int
	Values        [][]int
	Conn          Connectivity
	CellThreshold int
	// forward offsets only, so each edge is emitted once
	neighborOffsets [][2]int
}
