// SPDX-License-Identifier: MIT
// Package: knightsliars/solver
//
// pb.go: PBSolver, the gophersat-backed Solver.

package solver

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"

	gs "github.com/crillab/gophersat/solver"
	"github.com/golang/glog"

	"github.com/katalvlaran/knightsliars/bfs"
	"github.com/katalvlaran/knightsliars/core"
	"github.com/katalvlaran/knightsliars/forcing"
	"github.com/katalvlaran/knightsliars/labeling"
)

const methodSolve = "Solve"

// PBSolver solves the knights-and-liars problem with gophersat.
type PBSolver struct {
	defaults []Option
}

var _ Solver = (*PBSolver)(nil)

// NewPBSolver returns a PBSolver whose defaults are applied before the
// options of every Solve call.
func NewPBSolver(defaults ...Option) *PBSolver {
	return &PBSolver{defaults: append([]Option(nil), defaults...)}
}

// Solve maximises the number of red vertices of g.
//
// Errors are returned for invalid input only (nil graph, unknown or
// conflicting fixes, unsupported formulation). An unsatisfiable system is
// a Solution with status Infeasible, not an error.
func (p *PBSolver) Solve(ctx context.Context, g *core.Graph, opts ...Option) (*Solution, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodSolve, ErrGraphNil)
	}
	var o Options
	for _, opt := range p.defaults {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Formulation != Standard && o.Formulation != Alternative {
		return nil, fmt.Errorf("%s: %s: %w", methodSolve, o.Formulation, ErrUnsupportedFormulation)
	}

	fixes, err := collectFixes(g, o)
	if err != nil {
		return nil, err
	}
	if o.Presolve {
		res, err := forcing.Closure(g)
		if err != nil {
			return nil, fmt.Errorf("%s: presolve: %w", methodSolve, err)
		}
		for _, id := range res.Forced.Sorted() {
			if fixes[id] {
				glog.V(1).Infof("solver: %s fixed red but forced blue", id)
				return &Solution{Status: Infeasible}, nil
			}
			fixes[id] = false
		}
		glog.V(1).Infof("solver: presolve fixed %d of %d vertices blue", res.Forced.Len(), g.VertexCount())
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if o.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.TimeLimit)
		defer cancel()
	}

	if !o.Decompose {
		return solveGraph(ctx, g, o.Formulation, fixes)
	}

	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("%s: components: %w", methodSolve, err)
	}
	total := &Solution{Status: Optimal, Red: []string{}}
	for i, comp := range comps {
		keep := make(map[string]bool, len(comp))
		for _, id := range comp {
			keep[id] = true
		}
		sol, err := solveGraph(ctx, core.InducedSubgraph(g, keep), o.Formulation, fixes)
		if err != nil {
			return nil, fmt.Errorf("%s: component %d: %w", methodSolve, i, err)
		}
		glog.V(1).Infof("solver: component %d/%d (%d vertices): %s, %d red",
			i+1, len(comps), len(comp), sol.Status, sol.Objective)
		total.Status = worse(total.Status, sol.Status)
		if total.Status == Infeasible {
			return &Solution{Status: Infeasible}, nil
		}
		if sol.Red == nil {
			total.Red = nil
			continue
		}
		if total.Red != nil {
			total.Red = append(total.Red, sol.Red...)
		}
	}
	if total.Red != nil {
		sort.Strings(total.Red)
		total.Objective = len(total.Red)
	}

	return total, nil
}

// collectFixes validates WithRed/WithBlue and returns ID → red.
func collectFixes(g *core.Graph, o Options) (map[string]bool, error) {
	fixes := make(map[string]bool, len(o.Red)+len(o.Blue))
	for _, id := range o.Red {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%s: red %q: %w", methodSolve, id, ErrUnknownVertex)
		}
		fixes[id] = true
	}
	for _, id := range o.Blue {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("%s: blue %q: %w", methodSolve, id, ErrUnknownVertex)
		}
		if fixes[id] {
			return nil, fmt.Errorf("%s: %q: %w", methodSolve, id, ErrConflictingFix)
		}
		fixes[id] = false
	}

	return fixes, nil
}

// solveGraph runs one gophersat optimisation over g.
func solveGraph(ctx context.Context, g *core.Graph, f Formulation, fixes map[string]bool) (*Solution, error) {
	enc, err := encode(g, f, fixes)
	if err != nil {
		return nil, err
	}
	n := len(enc.ids)
	if n == 0 {
		return &Solution{Status: Optimal, Red: []string{}}, nil
	}
	if enc.infeasible != "" {
		glog.V(1).Infof("solver: infeasible before search: %s", enc.infeasible)
		return &Solution{Status: Infeasible}, nil
	}

	if ctx.Err() != nil {
		return &Solution{Status: TimeLimit}, nil
	}

	problem := gs.ParsePBConstrs(enc.constrs)
	// Cost: one unit per blue vertex, i.e. per negated label literal.
	costLits := make([]gs.Lit, n)
	costWeights := make([]int, n)
	for i := range costLits {
		costLits[i] = gs.IntToVar(int32(i + 1)).SignedLit(true)
		costWeights[i] = 1
	}
	problem.SetCostFunc(costLits, costWeights)
	s := gs.New(problem)

	inc := &incumbent{}
	results := make(chan gs.Result)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for r := range results {
			if r.Status != gs.Sat {
				continue
			}
			if labels := labelsOf(r.Model, n); labels != nil {
				inc.set(labels)
			}
			glog.V(1).Infof("solver: improved model: %d red of %d", n-r.Weight, n)
		}
	}()

	// gophersat does not read stop, so an expired search cannot be
	// interrupted: it is abandoned and runs to completion in the
	// background. done is buffered and the drainer keeps consuming, so
	// the goroutine never blocks and exits once the search ends.
	stop := make(chan struct{})
	done := make(chan gs.Result, 1)
	go func() {
		done <- s.Optimal(results, stop)
	}()

	var res gs.Result
	select {
	case res = <-done:
		<-drained
	case <-ctx.Done():
		close(stop)
		glog.V(1).Infof("solver: %v, abandoning search on %d vertices", ctx.Err(), n)
		return timedOut(g, enc.ids, inc.get()), nil
	}

	switch res.Status {
	case gs.Sat:
		model := s.Model()
		sol := &Solution{Status: Optimal, Red: []string{}}
		for i, id := range enc.ids {
			if model[i] {
				sol.Red = append(sol.Red, id)
			}
		}
		sol.Objective = len(sol.Red)
		if err := verify(g, sol.Red); err != nil {
			return nil, err
		}
		return sol, nil
	case gs.Unsat:
		return &Solution{Status: Infeasible}, nil
	default:
		return &Solution{Status: TimeLimit}, nil
	}
}

// incumbent holds the labels of the latest model reported by the search.
type incumbent struct {
	mu     sync.Mutex
	labels []bool
}

func (c *incumbent) set(labels []bool) {
	c.mu.Lock()
	c.labels = labels
	c.mu.Unlock()
}

func (c *incumbent) get() []bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.labels
}

// timedOut builds the TimeLimit solution from the best labels seen, if any.
// A model that fails the labeling rules is dropped rather than reported.
func timedOut(g *core.Graph, ids []string, labels []bool) *Solution {
	sol := &Solution{Status: TimeLimit}
	if labels == nil {
		return sol
	}
	red := []string{}
	for i, id := range ids {
		if labels[i] {
			red = append(red, id)
		}
	}
	if err := verify(g, red); err != nil {
		glog.Warningf("solver: dropping incumbent: %v", err)
		return sol
	}
	sol.Red = red
	sol.Objective = len(red)

	return sol
}

// labelsOf copies the first n variable bindings out of an intermediate
// gophersat model. Models arrive either as a slice indexed by Var or as a
// map keyed by variable. Returns nil for an unreadable model.
func labelsOf(model interface{}, n int) []bool {
	v := reflect.ValueOf(model)
	labels := make([]bool, n)
	switch v.Kind() {
	case reflect.Slice:
		if v.Len() < n || v.Type().Elem().Kind() != reflect.Bool {
			return nil
		}
		for i := 0; i < n; i++ {
			labels[i] = v.Index(i).Bool()
		}
	case reflect.Map:
		if v.Len() == 0 || v.Type().Elem().Kind() != reflect.Bool {
			return nil
		}
		iter := v.MapRange()
		for iter.Next() {
			if i, ok := varIndex(iter.Key().Interface()); ok && i >= 0 && i < n {
				labels[i] = iter.Value().Bool()
			}
		}
	default:
		return nil
	}

	return labels
}

// varIndex maps a model key to the zero-based vertex index. Integer keys
// are CNF variable numbers.
func varIndex(key interface{}) (int, bool) {
	switch k := key.(type) {
	case gs.Var:
		return int(k), true
	case int:
		return k - 1, true
	case int32:
		return int(k) - 1, true
	default:
		return 0, false
	}
}

// verify re-checks a model against the labeling rules.
func verify(g *core.Graph, red []string) error {
	rep, err := labeling.Check(g, red)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !rep.Valid {
		glog.Errorf("solver: model rejected: %v", rep.Violations[0])
		return fmt.Errorf("verify: %d violations, first %v: %w", len(rep.Violations), rep.Violations[0], ErrModelRejected)
	}

	return nil
}
