// Package graph defines tunable options, sentinel errors, and the BFS
// result type for index-graph traversal.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrNegativeOrder is returned when NewGraph is given n < 0.
	ErrNegativeOrder = errors.New("graph: vertex count cannot be negative")

	// ErrVertexRange is returned when a vertex index is outside 0..n-1.
	ErrVertexRange = errors.New("graph: vertex index out of range")

	// ErrSelfLoop is returned when AddEdge is called with u == v.
	ErrSelfLoop = errors.New("graph: self-loops not supported")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Unreached is the Dist sentinel for vertices the traversal never saw.
const Unreached = -1

// NoParent is the Parent sentinel for the root and unreached vertices.
const NoParent = -1

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded internally and
// surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
// no depth limit, no-op visit hook, error channel clear.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
		err:      nil,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence (ascending distance,
//     ascending index on ties).
//   - Dist: distance (in edges) from the root; Unreached if never seen.
//   - Parent: predecessor in the BFS tree; NoParent for the root and
//     for unreached vertices.
type Result struct {
	Order  []int
	Dist   []int
	Parent []int
}

// Reached reports whether the traversal saw vertex v.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreached
}
