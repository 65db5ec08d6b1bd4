// SPDX-License-Identifier: MIT
// Package: knightsliars/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • For 0 < p < 1 an RNG is required (WithSeed/WithRand), else ErrNeedRandSource.
//     p == 0 and p == 1 are deterministic and need no RNG.
//   • Adds vertices via cfg.idFn (0..n-1), then visits pairs (i<j) in
//     lexicographic order and keeps each with probability p.
//
// Complexity:
//   • Time: O(n²) pair checks. Space: O(n) for the ID slice.
//
// Determinism:
//   • One rng.Float64() draw per pair in a fixed order ⇒ identical graphs per seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/knightsliars/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n,p) graph.
// Random graphs mix odd and even degrees, which makes them useful fixtures for
// the forcing closure.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addIndexedVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = connect(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
