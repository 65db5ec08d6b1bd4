// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbourhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() slices are sorted lex asc and independently allocated.
// Concurrency:
//   - Read operations hold muVert then muAdj read locks.

package core

import "sort"

// NeighborIDs returns the IDs adjacent to id, sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators so a vertex cannot vanish between the
	// existence check and the adjacency snapshot.
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	nbrs := g.adjacency[id]
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot vertex -> sorted neighbour IDs.
// Isolated vertices map to an empty, non-nil slice.
// Complexity: O(V + E log Δ).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for id := range g.vertices {
		nbrs := g.adjacency[id]
		ids := make([]string, 0, len(nbrs))
		for v := range nbrs {
			ids = append(ids, v)
		}
		sort.Strings(ids)
		out[id] = ids
	}

	return out
}
