// Package orient is the orientation-propagation engine: it assigns a
// globally consistent orientation to the cells of a cell complex by
// flipping cells and spreading orientation decisions breadth-first over
// shared-face adjacency.
//
// What
//
//   - Flip: reverse one cell's orientation (swap its first two points)
//     and negate every agreement flag the cell participates in, on both
//     relation sides. Applying Flip twice restores the cell bit-exactly.
//   - OrientCell: the single-cell rule — a parentless top-dimensional
//     simplex orients itself from geometry (flip iff the determinant
//     sign is Negative; Zero leaves it untouched); a cell with exactly
//     one parent aligns with that parent; anything else is left for a
//     component-level pass.
//   - OrientComponent: orient a chosen root, then BFS outward; each
//     reached cell is flipped iff its agreement flag on the face shared
//     with its BFS predecessor equals the predecessor's — adjacent
//     cells must induce opposite directions on a shared face.
//   - OrientCells: split a same-dimension collection into connected
//     components and run OrientComponent on each, highest root
//     dimension first.
//   - OrientComplex: whole-complex entry point. When the top dimension
//     equals the ambient dimension every top cell self-determines from
//     its own geometry; otherwise only relative consistency is
//     achievable and the top level is oriented collectively.
//
// Non-orientable inputs
//
//	Propagation is best-effort: on a Möbius-like component the result
//	is whatever the traversal order produces, and no error is raised.
//	Callers needing an orientability guarantee must verify separately.
//
// Determinism
//
//	BFS processes equal-distance cells in ascending index order and
//	component roots are the lowest positions of their components, so
//	repeated runs on the same input flip the same cells.
//
// Errors
//
//   - ErrComplexNil    nil complex.
//   - ErrGraphMismatch graph order ≠ collection length.
//   - ErrMissingFace   the graph reports two cells adjacent but the
//     face map has no entry for the ordered pair — an adjacency-builder
//     contract violation, never skipped silently.
//   - cells/graph/adjacency/simplex sentinel errors surfaced unchanged.
//
// Complexity: O(V + E) per component plus one O(N³) determinant per
// oriented root.
package orient
