// SPDX-License-Identifier: MIT
// Package: knightsliars/solver
//
// Package solver finds a labeling with the maximum number of red vertices
// (knights) by handing the knights-and-liars constraints to a
// pseudo-boolean optimiser (github.com/crillab/gophersat).
//
// Model
//
// One binary x_v per vertex, x_v = 1 meaning red. For a vertex of degree d
// with S red neighbours, h = d/2 and k = h+1:
//
//	d odd        x = 0
//	d = 0        x = 1
//	d even > 0   x = 1 ⇒ S = h
//	             x = 0 ⇒ S ≤ h-1  or  S ≥ k
//
// The disjunction for blue vertices is linearised in one of two ways:
//
//   - Standard: two auxiliaries high/low with high+low ≥ 1-x,
//     high+low ≤ 1+x, low ⇒ S ≤ h-1, high ⇒ S ≥ k.
//   - Alternative: one auxiliary a, a = 0 ⇒ S ≤ h-1, a = 1 ⇒ S ≥ k
//     (both relaxed by k·x).
//
// The objective minimises the number of blue vertices; Solution.Objective
// is the number of red ones.
//
// Options
//
//   - WithFormulation(Standard|Alternative). Indicator is recognised but
//     rejected with ErrUnsupportedFormulation.
//   - WithRed / WithBlue fix labels. A vertex in both is ErrConflictingFix.
//   - WithPresolve fixes every vertex of forcing.Closure to blue.
//   - WithDecompose solves each connected component on its own.
//   - WithTimeLimit bounds the whole call. When the deadline or the
//     context wins over the search, the latest improving model is returned
//     with status TimeLimit. A search that finishes first is Optimal or
//     Infeasible even if the deadline passes right after.
//
// Concurrency:
//   - The gophersat search runs on its own goroutine and a drainer
//     goroutine records intermediate models. gophersat cannot be
//     interrupted, so on expiry the search is abandoned: it keeps running
//     in the background until it finishes and then exits.
//   - A PBSolver is immutable after construction and safe for concurrent
//     Solve calls.
package solver
