// Package graph implements breadth-first search over an index graph,
// returning unweighted shortest-path distances, parent links, and visit
// order.
package graph

import "fmt"

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *Graph
	opts  BFSOptions
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from root, applying any
// number of functional Options. Vertices at equal distance are visited
// in ascending index order because neighbor lists are kept sorted.
//
// Returns ErrGraphNil or ErrVertexRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
//
// Complexity: Time O(V + E), Memory O(V).
func BFS(g *Graph, root int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.check(root); err != nil {
		return nil, err
	}

	// Prepare walker with sentinel-filled result slices.
	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Dist[i] = Unreached
		w.res.Parent[i] = NoParent
	}

	// Seed queue with the root (no parent).
	w.enqueue(root, 0, NoParent)
	return w.res, w.loop()
}

// enqueue records v's depth and parent and adds it to the queue.
// Recording Dist doubles as the visited mark.
func (w *walker) enqueue(v, depth, parent int) {
	w.res.Dist[v] = depth
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: depth})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		item := w.queue[qi]
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("graph: OnVisit error at %d: %w", item.v, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor
// in ascending index order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.adj[item.v] {
		// first time seen?
		if w.res.Dist[nbr] == Unreached {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}
}
