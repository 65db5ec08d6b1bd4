// Package builder provides deterministic, functional-options style
// constructors for the graphs the knights-and-liars tooling works on:
// lattices (grid, d-dimensional grid, torus, triangular) and small
// reference graphs (path, cycle, star, wheel, complete, random, empty).
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(bopts, cons...): new core.Graph + constructors in order.
//     – Apply(g, con, opts...):   run one constructor on an existing graph.
//   - Configuration primitives:
//     – BuilderOption / builderConfig: ID scheme and RNG.
//     – WithIDScheme, WithSymbNumb, WithDefaultIDs, WithSeed, WithRand.
//   - Vertex-ID schemes:
//     – DefaultIDFn:        decimal strings ("0","1",…).
//     – SymbolNumberIDFn:   prefix + decimal ("v0","v1",…).
//     – CoordID/ParseCoordID: "r,c" / "i,j,k" coordinates for lattices.
//
// Degree profile of the lattices (what the forcing closure reacts to):
//
//	Grid r×c        corners 2, borders 3, interior 4
//	Torus r×c       all 4
//	Triangular r×c  corners 2 or 3, borders 3–4, interior 6
//	Lattice d-dim   between d and 2d
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel runtime errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
//   - Stable vertex and edge emission order for equal inputs and seeds.
package builder
