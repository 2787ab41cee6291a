// Package builder constructs simplicial cell complexes from point
// coordinates and top-simplex vertex lists, generating the full face
// lattice with orientation-agreement flags derived from induced
// boundary orientations.
//
// What
//
//   - SimplicialComplex takes the ambient point set and, per top
//     simplex, an ordered list of vertex indices. It creates every
//     boundary face down to the vertices (deduplicated by vertex set)
//     and links each parent/child pair with an agreement flag: true iff
//     the face's orientation, as induced by the parent via the standard
//     boundary rule (omit vertex i, sign (−1)ⁱ), matches the face's
//     stored vertex order.
//
// Why
//
//	Orientation propagation reads agreement flags off shared faces; a
//	complex whose flags were derived from actual vertex orderings lets
//	geometric handedness and combinatorial bookkeeping stay in sync
//	from the start.
//
// Determinism
//
//	Top simplices are processed in input order and faces generated in
//	omit-vertex order, so arena IDs and stored face orderings are fully
//	reproducible. A face shared by several parents keeps the vertex
//	order given by the first parent that created it.
//
// Errors
//
//   - ErrNoPoints           empty point set.
//   - ErrVertexIndex        vertex index outside the point set.
//   - ErrDegenerateSimplex  empty simplex or repeated vertex.
//   - ErrOptionViolation    invalid Option (e.g. negative MinDimension).
//   - cells sentinel errors surfaced from the underlying arena.
package builder
