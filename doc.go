// Package cellorient assigns a globally consistent orientation to the
// cells of a combinatorial cell complex embedded in N-dimensional space.
//
// 🚀 What is cellorient?
//
//	A deterministic, zero-dependency library that brings together:
//		• Cell model: arena-backed cells with parent/child agreement flags
//		• Geometry: simplex wedge vectors & determinant-sign handedness test
//		• Graph primitives: undirected index graphs, BFS, connected components
//		• Adjacency: shared-face graphs & ordered-pair face maps
//		• Builder: full face lattices from top-dimensional simplices
//		• Orient: flip propagation over components and whole complexes
//
// ✨ Why choose cellorient?
//
//   - Deterministic by construction – sorted adjacency, stable tie-breaks
//   - Rock-solid guarantees – joint two-sided flag updates, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – BFS hooks (OnVisit) for custom instrumentation
//
// Everything is organized under six subpackages:
//
//	cells/     — Point, Cell, Complex arena types & relation mutators
//	simplex/   — read-only simplex views, wedge matrices, orientation sign
//	graph/     — undirected index graph, BFS, connected components
//	adjacency/ — shared-face adjacency graphs and face maps
//	builder/   — simplicial complex construction from vertex index lists
//	orient/    — the orientation-propagation engine
//
// Quick ASCII example:
//
//	    p2
//	    ╱╲          two triangles sharing the edge p1–p2:
//	   ╱  ╲         orienting one propagates across the shared
//	  ╱____╲___p3   face so both induce opposite directions on it.
//	 p0    p1
//
// Dive into each package's doc.go for guarantees, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/cellorient
package cellorient
