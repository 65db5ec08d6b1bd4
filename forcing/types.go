// SPDX-License-Identifier: MIT
// Package: knightsliars/forcing
//
// types.go: forced-set type, graph view and sentinel errors.

package forcing

import (
	"errors"
	"sort"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("forcing: graph is nil")

	// ErrNeighbors wraps a failure to list the neighbours of a vertex.
	ErrNeighbors = errors.New("forcing: neighbor lookup failed")
)

// Graph is the read-only view the propagator consumes. *core.Graph
// satisfies it; degree is len(NeighborIDs(id)).
type Graph interface {
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
}

// Set is a set of vertex IDs.
type Set map[string]struct{}

// NewSet returns a Set holding ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Contains reports whether id is in s.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of IDs in s.
func (s Set) Len() int { return len(s) }

// Sorted returns the IDs in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Equal reports whether s and other hold the same IDs.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether every ID of s is in other.
func (s Set) IsSubsetOf(other Set) bool {
	for id := range s {
		if _, ok := other[id]; !ok {
			return false
		}
	}

	return true
}

// Result is the outcome of Closure.
type Result struct {
	// Forced is the least fixed point. The package keeps no reference to it.
	Forced Set
	// Steps counts productive iterations (those that added a vertex).
	Steps int
	// Sizes[i] is |F| after productive step i+1; len(Sizes) == Steps.
	Sizes []int
}

// Option configures Closure.
type Option func(*options)

type options struct {
	onStep func(step int, added []string)
}

// WithOnStep registers a hook called after each productive step with the
// 1-based step number and the sorted IDs added by it.
// Panics on nil.
func WithOnStep(fn func(step int, added []string)) Option {
	if fn == nil {
		panic("forcing: WithOnStep(nil)")
	}
	return func(o *options) {
		o.onStep = fn
	}
}
