// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// impl_from_graph.go: FromGraph constructor.
//
// Contract:
//   - Copies every vertex and edge of src into the target graph, IDs kept.
//   - src is only read; the ID scheme and RNG of the builder are ignored.
//   - Lets externally built boards (e.g. gridgraph masks) compose with the
//     other constructors through BuildGraph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

const methodFromGraph = "FromGraph"

// FromGraph returns a Constructor that copies src into the target graph.
func FromGraph(src *core.Graph) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if src == nil {
			return fmt.Errorf("%s: nil source graph: %w", methodFromGraph, ErrConstructFailed)
		}
		for _, id := range src.Vertices() {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodFromGraph, id, err)
			}
		}
		for _, e := range src.Edges() {
			if err := connect(g, methodFromGraph, e.From, e.To); err != nil {
				return err
			}
		}

		return nil
	}
}
