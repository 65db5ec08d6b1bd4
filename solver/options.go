// SPDX-License-Identifier: MIT
// Package: knightsliars/solver
//
// options.go: functional options shared by NewPBSolver and Solve.

package solver

import "time"

// Option configures a solve.
type Option func(*Options)

// Options holds the knobs of a solve. Per-call options are applied after
// the solver's defaults.
type Options struct {
	Formulation Formulation
	Red         []string
	Blue        []string
	TimeLimit   time.Duration
	Presolve    bool
	Decompose   bool
}

// WithFormulation selects the linearisation.
func WithFormulation(f Formulation) Option {
	return func(o *Options) { o.Formulation = f }
}

// WithRed fixes ids to red. Repeated calls accumulate.
func WithRed(ids ...string) Option {
	return func(o *Options) { o.Red = append(o.Red, ids...) }
}

// WithBlue fixes ids to blue. Repeated calls accumulate.
func WithBlue(ids ...string) Option {
	return func(o *Options) { o.Blue = append(o.Blue, ids...) }
}

// WithTimeLimit bounds the solve; d <= 0 means no limit.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithPresolve fixes every vertex forced by propagation to blue.
func WithPresolve() Option {
	return func(o *Options) { o.Presolve = true }
}

// WithDecompose solves each connected component separately.
func WithDecompose() Option {
	return func(o *Options) { o.Decompose = true }
}
