// Package labeling validates red/blue labelings of a graph under the
// knights-and-liars rules.
//
// A red vertex (knight) tells the truth about having exactly as many red
// as blue neighbours; a blue vertex (liar) must not have that balance.
// For a vertex x of degree d with r red neighbours a labeling is valid iff:
//
//	d odd       → x is blue           (rule RuleOddDegreeRed otherwise)
//	x red       → r == d/2            (rule RuleRedUnbalanced otherwise)
//	x blue, d even → r != d/2         (rule RuleBlueBalanced otherwise)
//
// Isolated vertices are therefore red in every valid labeling, and every
// vertex of forcing.Closure is blue in every valid labeling.
package labeling

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("labeling: graph is nil")

	// ErrUnknownVertex is returned when a red ID is not a graph vertex.
	ErrUnknownVertex = errors.New("labeling: unknown vertex")
)

// Rule names a violated constraint.
type Rule string

const (
	RuleOddDegreeRed  Rule = "odd-degree-red"
	RuleRedUnbalanced Rule = "red-unbalanced"
	RuleBlueBalanced  Rule = "blue-balanced"
)

// Graph is the read-only view Check needs. *core.Graph satisfies it.
type Graph interface {
	HasVertex(id string) bool
	Vertices() []string
	NeighborIDs(id string) ([]string, error)
}

// Violation describes one vertex whose label breaks a rule.
type Violation struct {
	Vertex       string
	Red          bool
	Degree       int
	RedNeighbors int
	Rule         Rule
}

func (v Violation) String() string {
	colour := "blue"
	if v.Red {
		colour = "red"
	}
	return fmt.Sprintf("%s (%s, deg %d, %d red neighbours): %s",
		v.Vertex, colour, v.Degree, v.RedNeighbors, v.Rule)
}

// Report is the outcome of Check.
type Report struct {
	Valid      bool
	Red        []string    // sorted, deduplicated
	Violations []Violation // in vertex order
}

// Check validates the labeling in which exactly the vertices of red are
// red. Duplicates in red are ignored.
func Check(g Graph, red []string) (*Report, error) {
	if g == nil {
		return nil, fmt.Errorf("Check: %w", ErrGraphNil)
	}
	isRed := make(map[string]bool, len(red))
	for _, id := range red {
		if !g.HasVertex(id) {
			return nil, fmt.Errorf("Check: %q: %w", id, ErrUnknownVertex)
		}
		isRed[id] = true
	}

	rep := &Report{Red: make([]string, 0, len(isRed))}
	for id := range isRed {
		rep.Red = append(rep.Red, id)
	}
	sort.Strings(rep.Red)

	for _, x := range g.Vertices() {
		nbrs, err := g.NeighborIDs(x)
		if err != nil {
			return nil, fmt.Errorf("Check: neighbors of %q: %w", x, err)
		}
		d, r := len(nbrs), 0
		for _, y := range nbrs {
			if isRed[y] {
				r++
			}
		}

		var rule Rule
		switch {
		case d%2 == 1 && isRed[x]:
			rule = RuleOddDegreeRed
		case isRed[x] && 2*r != d:
			rule = RuleRedUnbalanced
		case !isRed[x] && d%2 == 0 && 2*r == d:
			rule = RuleBlueBalanced
		default:
			continue
		}
		rep.Violations = append(rep.Violations, Violation{
			Vertex: x, Red: isRed[x], Degree: d, RedNeighbors: r, Rule: rule,
		})
	}
	rep.Valid = len(rep.Violations) == 0

	return rep, nil
}
