// SPDX-License-Identifier: MIT
// Package: knightsliars/forcing
//
// forcing.go: Step, Closure and IsFixedPoint.

package forcing

import (
	"fmt"
	"sort"

	"github.com/golang/glog"
)

const (
	methodStep         = "Step"
	methodClosure      = "Closure"
	methodIsFixedPoint = "IsFixedPoint"
)

// adjacency is a per-call snapshot of the graph: vertices in enumeration
// order and their neighbour lists.
type adjacency struct {
	order []string
	nbrs  map[string][]string
}

func snapshot(g Graph, method string) (*adjacency, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	order := g.Vertices()
	adj := &adjacency{order: order, nbrs: make(map[string][]string, len(order))}
	for _, id := range order {
		ns, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w: %v", method, id, ErrNeighbors, err)
		}
		adj.nbrs[id] = ns
	}

	return adj, nil
}

// added returns the vertices the rule forces from snapshot f that are
// not yet in f, in enumeration order. f is only read.
func (a *adjacency) added(f Set) []string {
	var out []string
	for _, x := range a.order {
		if f.Contains(x) {
			continue
		}
		deg := len(a.nbrs[x])
		if len(f) == 0 {
			if deg%2 == 1 {
				out = append(out, x)
			}
			continue
		}
		in := 0
		for _, y := range a.nbrs[x] {
			if f.Contains(y) {
				in++
			}
		}
		if 2*in > deg {
			out = append(out, x)
		}
	}

	return out
}

// Step applies the forcing rule once and returns F ∪ new as a fresh Set.
// f is not modified; a nil f is treated as empty.
func Step(g Graph, f Set) (Set, error) {
	adj, err := snapshot(g, methodStep)
	if err != nil {
		return nil, err
	}
	next := f.Clone()
	for _, x := range adj.added(f) {
		next[x] = struct{}{}
	}

	return next, nil
}

// IsFixedPoint reports whether Step(g, f) == f.
func IsFixedPoint(g Graph, f Set) (bool, error) {
	adj, err := snapshot(g, methodIsFixedPoint)
	if err != nil {
		return false, err
	}

	return len(adj.added(f)) == 0, nil
}

// Closure iterates Step from the empty set until a fixed point and returns
// the forced set together with per-step statistics.
//
// Example: on the path a–b–c the first step forces a and c (degree 1), the
// second forces b (2·2 > 2); Steps == 2, Sizes == [2 3].
func Closure(g Graph, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	adj, err := snapshot(g, methodClosure)
	if err != nil {
		return nil, err
	}

	res := &Result{Forced: make(Set)}
	// Bounded by |V|+1 passes: each productive pass adds at least one vertex.
	for {
		add := adj.added(res.Forced)
		if len(add) == 0 {
			break
		}
		next := res.Forced.Clone()
		for _, x := range add {
			next[x] = struct{}{}
		}
		res.Forced = next
		res.Steps++
		res.Sizes = append(res.Sizes, len(next))

		if glog.V(2) {
			glog.Infof("forcing: step %d added %d vertices (total %d/%d)",
				res.Steps, len(add), len(next), len(adj.order))
		}
		if o.onStep != nil {
			sorted := append([]string(nil), add...)
			sort.Strings(sorted)
			o.onStep(res.Steps, sorted)
		}
	}

	return res, nil
}
