package core_test

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty undirected simple graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds vertices A, B, C).
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	// 3) Inspect vertices and degrees.
	fmt.Println("Vertices:", g.Vertices())
	deg, _ := g.Degree("A")
	fmt.Println("deg(A):", deg, "edge B–A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges.
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// deg(A): 2 edge B–A exists? true
	// After removing B: [A C] 1
}
