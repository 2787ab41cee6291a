// Package graph provides the undirected index graph consumed by
// adjacency construction and orientation propagation.
package graph

import "sort"

// Graph is an undirected, unweighted graph over the fixed vertex index
// set 0..n-1. Neighbor lists are kept sorted ascending at all times so
// every traversal is deterministic.
//
// A Graph is built once and then read; it is not safe for concurrent
// mutation.
type Graph struct {
	adj [][]int // adj[u] lists neighbors of u, sorted ascending
}

// NewGraph creates a graph with n isolated vertices.
// Returns ErrNegativeOrder if n < 0.
//
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeOrder
	}
	return &Graph{adj: make([][]int, n)}, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// AddEdge inserts the undirected edge {u, v}. Parallel edges collapse
// to one; self-loops are rejected with ErrSelfLoop; indices outside
// 0..n-1 are rejected with ErrVertexRange.
//
// Complexity: O(degree) per endpoint (sorted insert).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	if u == v {
		return ErrSelfLoop
	}
	g.insert(u, v)
	g.insert(v, u)
	return nil
}

// insert adds v to u's sorted neighbor list unless already present.
func (g *Graph) insert(u, v int) {
	nbrs := g.adj[u]
	i := sort.SearchInts(nbrs, v)
	if i < len(nbrs) && nbrs[i] == v {
		return // dedup
	}
	nbrs = append(nbrs, 0)
	copy(nbrs[i+1:], nbrs[i:])
	nbrs[i] = v
	g.adj[u] = nbrs
}

// HasEdge reports whether the edge {u, v} exists.
//
// Complexity: O(log degree)
func (g *Graph) HasEdge(u, v int) (bool, error) {
	if err := g.check(u); err != nil {
		return false, err
	}
	if err := g.check(v); err != nil {
		return false, err
	}
	nbrs := g.adj[u]
	i := sort.SearchInts(nbrs, v)
	return i < len(nbrs) && nbrs[i] == v, nil
}

// Degree returns the number of neighbors of u.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.check(u); err != nil {
		return 0, err
	}
	return len(g.adj[u]), nil
}

// Neighbors returns a copy of u's neighbor list in ascending order.
//
// Complexity: O(degree)
func (g *Graph) Neighbors(u int) ([]int, error) {
	if err := g.check(u); err != nil {
		return nil, err
	}
	out := make([]int, len(g.adj[u]))
	copy(out, g.adj[u])
	return out, nil
}

// check validates a vertex index against the graph order.
func (g *Graph) check(u int) error {
	if u < 0 || u >= len(g.adj) {
		return ErrVertexRange
	}
	return nil
}
