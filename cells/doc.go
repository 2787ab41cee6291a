// Package cells provides the arena-backed data model for combinatorial
// cell complexes: points, cells of arbitrary intrinsic dimension, and
// the parent/child boundary relations that carry orientation-agreement
// flags.
//
// What
//
//   - Point: a coordinate vector in N-dimensional ambient space.
//   - Cell: an ordered sequence of point references (order encodes
//     orientation), an intrinsic dimension (0 = vertex, 1 = edge, …),
//     and index-keyed parent/child relations.
//   - Complex: the central arena owning all cells, indexed by stable
//     IDs and stratified by dimension level.
//
// Relations & the joint-update invariant
//
//	A boundary relation between a parent cell and a child cell one
//	dimension below it carries a boolean agreement flag: whether the
//	child's orientation, as induced by the parent, matches the child's
//	own stored orientation. The flag is mirrored on both sides of the
//	relation and is only ever written through Link and SetAgreement,
//	which update both sides together. The two sides therefore never
//	disagree.
//
// Ownership
//
//	The Complex owns every Cell; cells reference each other only by ID.
//	Point data is shared by reference and owned by the caller. All
//	mutation is single-owner and sequential: a Complex must not be
//	mutated concurrently.
//
// Errors
//
//   - ErrAmbientDim        invalid ambient dimension or point length.
//   - ErrEmptyCell         a cell must carry at least one point.
//   - ErrDimensionMismatch cell dimension outside the complex, or a
//     relation between cells not one dimension apart.
//   - ErrCellNotFound      ID does not resolve in the arena.
//   - ErrNotRelated        agreement queried on a non-existent relation.
//   - ErrPointIndex        point index out of range.
package cells
