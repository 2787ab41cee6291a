// Package adjacency builds shared-face adjacency structures over a
// same-dimension cell collection: the undirected graph linking cells
// that share a boundary face, and the face map resolving each ordered
// adjacent pair to the shared face cell.
//
// What
//
//   - Build returns (a) a graph.Graph over positions 0..len(ids)-1 in
//     which an edge (i, j) exists iff cells ids[i] and ids[j] share a
//     common one-dimension-lower boundary face, and (b) a FaceMap
//     containing an entry for both orderings of every adjacent pair.
//
// Determinism
//
//	Shared faces are discovered by inverting child relations in
//	ascending child-ID order; when two cells share more than one face,
//	the face with the lowest arena ID is the one recorded in the map.
//
// Errors
//
//   - ErrComplexNil       nil complex.
//   - ErrMixedDimensions  the collection holds cells of differing
//     intrinsic dimension.
//   - cells.ErrCellNotFound surfaced for unresolvable IDs.
//
// Complexity: O(C·d + F·p²) where C is the collection size, d the
// children per cell, F the number of shared faces, and p the parents
// per face within the collection (p is 2 for manifold-like complexes).
package adjacency
