// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries for the undirected simple graph.
//
// Determinism:
//   - Edges() returns canonical pairs (From < To) sorted by (From, To).
//
// Concurrency:
//   - Mutators take muVert then muAdj (write); readers take read locks.

package core

import "sort"

// AddEdge connects u and v. Missing endpoints are created first.
// Adding an existing edge is a no-op, so the graph stays simple.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is "".
//   - ErrLoopNotAllowed: if u == v.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	for _, id := range [2]string{u, v} {
		if _, ok := g.vertices[id]; !ok {
			g.vertices[id] = struct{}{}
			g.adjacency[id] = make(map[string]struct{})
		}
	}

	if _, dup := g.adjacency[u][v]; dup {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the edge {u,v}.
//
// Errors:
//   - ErrEmptyVertexID: if u or v is "".
//   - ErrEdgeNotFound: if the edge (or either endpoint) does not exist.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u,v} is an edge. Unknown vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edgeCount
}

// Edges returns every edge once, in canonical orientation, sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.muAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
