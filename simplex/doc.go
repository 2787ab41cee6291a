// Package simplex computes the geometric handedness of top-dimensional
// simplicial cells from their vertex coordinates.
//
// What
//
//   - Simplex: a read-only view over a cell whose intrinsic dimension
//     equals the ambient dimension and whose point count equals
//     dimension + 1.
//   - Wedge: the N vectors from the simplex's first point to each of
//     its remaining points — the rows of the orientation matrix.
//   - Orientation: the sign of the determinant of the wedge matrix —
//     Positive, Negative, or Zero (degenerate, zero or near-zero
//     volume).
//
// Why
//
//	A top-dimensional simplex embedded at codimension zero carries an
//	intrinsic handedness readable directly from its vertex ordering.
//	The sign seeds orientation propagation: it decides whether the
//	root cell of a component must be flipped before its orientation is
//	spread to its neighbors.
//
// Determinism
//
//	The sign is evaluated by Gaussian elimination with partial
//	pivoting in a fixed column order; identical inputs always yield
//	identical signs. Zero is returned, never an error, when the volume
//	collapses below the relative tolerance.
//
// Errors
//
//   - ErrDimensionMismatch  cell dimension ≠ ambient dimension.
//   - ErrNotSimplex         point count ≠ dimension + 1.
//   - ErrNotSquare          Det called on a non-square matrix.
//
// Complexity: O(N³) per Orientation call, O(N²) scratch memory.
package simplex
