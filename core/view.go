// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Copy-producing views (Clone, InducedSubgraph). The source graph is
// never mutated; only read locks are taken on it.

package core

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, nil)
}

// InducedSubgraph returns a new Graph induced by keep: the result contains
// only vertices v with keep[v] == true and every edge whose endpoints are both
// kept. A nil keep map keeps everything.
//
// Complexity: O(V + E). Concurrency: read locks only on g.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	kept := func(id string) bool { return keep == nil || keep[id] }

	for id := range g.vertices {
		if !kept(id) {
			continue
		}
		out.vertices[id] = struct{}{}
		out.adjacency[id] = make(map[string]struct{})
	}

	for u, nbrs := range g.adjacency {
		if !kept(u) {
			continue
		}
		for v := range nbrs {
			if !kept(v) {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}
