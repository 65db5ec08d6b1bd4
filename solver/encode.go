// SPDX-License-Identifier: MIT
// Package: knightsliars/solver
//
// encode.go: translation of a graph into pseudo-boolean constraints.
//
// Variables use CNF numbering: vertex i of the sorted vertex list is
// variable i+1, auxiliaries follow. Every constraint is normalised to
// Σ wᵢ·lᵢ ≥ k before it reaches the backend; a "≤" bound is rewritten on
// negated literals. Trivially true constraints are dropped and trivially
// false ones mark the encoding infeasible, so the backend only ever sees
// meaningful constraints.

package solver

import (
	"fmt"

	gs "github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/knightsliars/core"
)

// encoding accumulates the constraint system for one graph.
type encoding struct {
	ids     []string
	nVars   int
	constrs []gs.PBConstr
	// units records literals fixed by unit clauses: var → value.
	units map[int]bool
	// infeasible is non-empty once a constraint can never hold.
	infeasible string
}

func (e *encoding) newVar() int {
	e.nVars++
	return e.nVars
}

// fix adds the unit clause var = val, detecting contradictions.
func (e *encoding) fix(v int, val bool) {
	if prev, ok := e.units[v]; ok {
		if prev != val {
			e.infeasible = fmt.Sprintf("vertex %s fixed both ways", e.ids[v-1])
		}
		return
	}
	e.units[v] = val
	lit := v
	if !val {
		lit = -v
	}
	e.constrs = append(e.constrs, gs.PropClause(lit))
}

func (e *encoding) clause(lits ...int) {
	e.constrs = append(e.constrs, gs.PropClause(lits...))
}

// atLeast adds Σ weights[i]·lits[i] ≥ k.
func (e *encoding) atLeast(lits, weights []int, k int) {
	if k <= 0 {
		return
	}
	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum < k {
		e.infeasible = fmt.Sprintf("constraint needs %d from total weight %d", k, sum)
		return
	}
	e.constrs = append(e.constrs, gs.GtEq(lits, weights, k))
}

// extend returns a fresh slice base ++ extra.
func extend(base []int, extra ...int) []int {
	out := make([]int, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}

// encode builds the constraint system of g. fixes maps vertex ID → red.
func encode(g *core.Graph, f Formulation, fixes map[string]bool) (*encoding, error) {
	ids := g.Vertices()
	e := &encoding{ids: ids, nVars: len(ids), units: make(map[int]bool)}
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i + 1
	}

	for i, id := range ids {
		x := i + 1
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("encode: neighbors of %q: %w", id, err)
		}
		d := len(nbrs)
		switch {
		case d == 0:
			e.fix(x, true)
		case d%2 == 1:
			e.fix(x, false)
		default:
			pos := make([]int, d)
			neg := make([]int, d)
			for j, y := range nbrs {
				pos[j] = index[y]
				neg[j] = -index[y]
			}
			e.evenVertex(x, pos, neg, f)
		}
	}

	// Fixes come last so contradictions with parity are caught by fix.
	for i, id := range ids {
		if red, ok := fixes[id]; ok {
			e.fix(i+1, red)
		}
	}

	return e, nil
}

// evenVertex encodes a vertex of even degree d > 0 with label x, red
// neighbour literals pos and blue neighbour literals neg.
func (e *encoding) evenVertex(x int, pos, neg []int, f Formulation) {
	d := len(pos)
	h, k := d/2, d/2+1
	ones := make([]int, d)
	for j := range ones {
		ones[j] = 1
	}

	// x ⇒ S ≤ h, written as Σ¬y + h·¬x ≥ h.
	e.atLeast(extend(neg, -x), extend(ones, h), h)
	// x ⇒ S ≥ h.
	e.atLeast(extend(pos, -x), extend(ones, h), h)

	switch f {
	case Alternative:
		a := e.newVar()
		// ¬x ∧ ¬a ⇒ S ≤ h-1.
		e.atLeast(extend(neg, a, x), extend(ones, k, k), k)
		// ¬x ∧ a ⇒ S ≥ k.
		e.atLeast(extend(pos, -a, x), extend(ones, k, k), k)
	default:
		high, low := e.newVar(), e.newVar()
		// ¬x ⇒ exactly one of high, low.
		e.clause(high, low, x)
		e.clause(-high, -low, x)
		// low ⇒ S ≤ h-1.
		e.atLeast(extend(neg, -low), extend(ones, k), k)
		// high ⇒ S ≥ k.
		e.atLeast(extend(pos, -high), extend(ones, k), k)
	}
}
