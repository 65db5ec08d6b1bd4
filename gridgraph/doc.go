// Package gridgraph turns a 2D grid of cells into a lattice graph, so that
// knights-and-liars questions can be asked on shaped boards (holes,
// L-shapes, crosses) and not only on full rectangles.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥
//     CellThreshold are vertices, the others are holes.
//   - ParseMask reads the text form used by config files and TextPlot
//     ("#"/"o" for a cell, "." for a hole, spaces between cells optional).
//   - ToCoreGraph links present cells under Conn4 (square lattice) or
//     Conn8 (king's graph). Vertex IDs are builder.CoordID(row, col), so
//     render.TextPlot draws results directly.
//
// Complexity:
//
//   - ParseMask / NewGridGraph: O(W×H).
//   - ToCoreGraph:              O(W×H×d), d = 4 or 8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a mask rune is neither a cell nor a hole.
package gridgraph
