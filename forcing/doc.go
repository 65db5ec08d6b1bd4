// SPDX-License-Identifier: MIT
// Package: knightsliars/forcing
//
// Package forcing computes the set of vertices that are blue (liars) in
// every valid knights-and-liars labeling, using a monotone fixed-point
// propagation rule.
//
// Rule
//
// Given the current forced set F, one Step computes
//
//	F = ∅:  new = { x : deg(x) is odd }
//	F ≠ ∅:  new = { x : 2·|N(x) ∩ F| > deg(x) }
//
// and returns F ∪ new. Closure iterates Step from ∅ until Step(F) == F.
//
// Why the rule is sound: an odd-degree vertex can never have exactly
// deg/2 red neighbours, so it is blue. A red vertex needs exactly deg/2
// red neighbours; if more than half of its neighbours are already known
// blue that is impossible, so it is blue too.
//
// Contract:
//   - Every vertex in one Step is tested against the SAME snapshot of F.
//     Adding vertices mid-pass would make the result depend on iteration
//     order; Step therefore never mutates its input.
//   - F_0 ⊆ F_1 ⊆ … ⊆ F_final ⊆ V, at most |V| productive steps.
//   - The graph is read once per call (neighbour lists are snapshotted);
//     callers must not mutate it concurrently.
//   - Isolated vertices (degree 0) are never forced.
//
// Complexity:
//   - Step:    O(V + E).
//   - Closure: O(V·(V + E)) worst case.
//
// Errors:
//   - ErrGraphNil : nil graph.
//   - ErrNeighbors: the graph failed to list neighbours of a vertex it
//     enumerated. For a well-formed graph neither occurs.
package forcing
