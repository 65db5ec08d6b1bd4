// SPDX-License-Identifier: MIT
// Package: knightsliars/solver
//
// types.go: public contract (Solver, Solution, Status, Formulation) and
// sentinel errors.

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/knightsliars/core"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("solver: graph is nil")

	// ErrUnknownVertex is returned when a fixed ID is not a graph vertex.
	ErrUnknownVertex = errors.New("solver: unknown vertex")

	// ErrConflictingFix is returned when a vertex is fixed both red and blue.
	ErrConflictingFix = errors.New("solver: vertex fixed both red and blue")

	// ErrUnsupportedFormulation is returned for formulations the
	// pseudo-boolean backend cannot express.
	ErrUnsupportedFormulation = errors.New("solver: unsupported formulation")

	// ErrModelRejected is returned when the backend's model fails the
	// labeling check.
	ErrModelRejected = errors.New("solver: model violates labeling rules")
)

// Status is the outcome of a Solve call.
type Status int

const (
	// Optimal: the labeling is proven maximal.
	Optimal Status = iota
	// Infeasible: no labeling satisfies the constraints and fixes.
	Infeasible
	// TimeLimit: stopped early; Red holds the best labeling found, if any.
	TimeLimit
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case TimeLimit:
		return "timelimit"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// worse returns the more pessimistic of two component statuses.
func worse(a, b Status) Status {
	if a == Infeasible || b == Infeasible {
		return Infeasible
	}
	if a == TimeLimit || b == TimeLimit {
		return TimeLimit
	}
	return Optimal
}

// Formulation selects how the blue-vertex disjunction is linearised.
type Formulation int

const (
	Standard Formulation = iota
	Alternative
	Indicator
)

func (f Formulation) String() string {
	switch f {
	case Standard:
		return "standard"
	case Alternative:
		return "alternative"
	case Indicator:
		return "indicator"
	default:
		return fmt.Sprintf("Formulation(%d)", int(f))
	}
}

// ParseFormulation maps "standard", "alternative" or "indicator"
// (case-insensitive) to a Formulation.
func ParseFormulation(s string) (Formulation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "":
		return Standard, nil
	case "alternative":
		return Alternative, nil
	case "indicator":
		return Indicator, nil
	default:
		return 0, fmt.Errorf("ParseFormulation(%q): %w", s, ErrUnsupportedFormulation)
	}
}

// Solution is the result of a Solve call.
type Solution struct {
	// Objective is the number of red vertices in Red.
	Objective int
	// Red lists the red vertices, sorted. Nil when no model was found.
	Red []string
	// Status tells whether Red is proven optimal.
	Status Status
}

// Solver maximises the number of red vertices of a valid labeling.
type Solver interface {
	Solve(ctx context.Context, g *core.Graph, opts ...Option) (*Solution, error)
}
