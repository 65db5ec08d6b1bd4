// Package bfs provides breadth-first search over an undirected graph,
// returning hop distances, parent links and visit order, plus a
// connected-components split built on the same walker.
package bfs

import (
	"context"
	"fmt"
	"sort"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state. One walker can run several
// traversals that share the visited set (see Components).
type walker struct {
	graph   Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

func newWalker(g Graph, o Options, n int) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
}

// BFS runs breadth-first search on g starting from startID.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any OnVisit error.
func BFS(g Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("bfs: %q: %w", startID, ErrStartVertexNotFound)
	}

	w := newWalker(g, o, len(g.Vertices()))
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Components splits g into connected components. Each component is
// sorted by ID (BFS order re-sorted) and components are ordered by their
// smallest ID, which follows from seeding in sorted vertex order.
//
// Complexity: O(V + E) plus O(V log V) for sorting inside components.
func Components(g Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	w := newWalker(g, DefaultOptions(), len(vertices))

	var comps [][]string
	for _, v := range vertices {
		if w.visited[v] {
			continue
		}
		start := len(w.res.Order)
		w.enqueue(v, 0, "")
		if err := w.loop(); err != nil {
			return nil, err
		}
		comp := append([]string(nil), w.res.Order[start:]...)
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
