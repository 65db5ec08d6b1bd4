// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit vertices and edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately; the
// partially built graph is discarded.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply resolves opts and runs a single constructor against an existing graph.
// It is the composition helper used when a caller already owns g.
func Apply(g *core.Graph, con Constructor, opts ...BuilderOption) error {
	if g == nil || con == nil {
		return fmt.Errorf("Apply: nil graph or constructor: %w", ErrConstructFailed)
	}

	return con(g, newBuilderConfig(opts...))
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Empty(n)            n isolated vertices (n ≥ 0).
// Path(n)             simple path P_n (n ≥ 2).
// Cycle(n)            simple cycle C_n (n ≥ 3).
// Star(n)             hub "Center" plus n-1 leaves (n ≥ 2).
// Wheel(n)            C_{n-1} plus hub "Center" (n ≥ 4).
// Complete(n)         K_n (n ≥ 1).
// RandomSparse(n, p)  G(n,p); requires WithSeed/WithRand for 0<p<1.
// Grid(r, c)          r×c 4-neighbourhood grid, IDs "r,c".
// Lattice(dims...)    d-dimensional grid, IDs "i,j,k,...".
// Torus(r, c)         r×c grid with wrap-around (r, c ≥ 3).
// Triangular(r, c)    r×c grid plus the (r,c)–(r+1,c+1) diagonal.
