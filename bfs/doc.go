// Package bfs provides breadth-first search over an undirected graph.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing hop
//     distance from start and returns a Result with:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start
//   - Parent: vertex → predecessor in the BFS tree
//   - Components(g) splits the graph into connected components. The
//     solver uses it to optimise each component separately, since the
//     knights-and-liars constraints never cross a component boundary.
//
// Options
//
//   - WithContext: cancellation, checked once per dequeued vertex.
//   - WithMaxDepth(d): d > 0 limits depth, d == 0 means no limit,
//     d < 0 is ErrOptionViolation.
//   - WithOnVisit: hook called per visited vertex; an error aborts.
//
// Determinism
//
//	Neighbour lists come back sorted from the graph and are enqueued in
//	that order, so visit order is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "0,0", bfs.WithMaxDepth(3))
//	comps, err := bfs.Components(g)
package bfs
