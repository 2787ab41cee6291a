// Package cells defines the Point, Cell, and Complex types together
// with their sentinel errors.
package cells

import (
	"errors"
	"sort"
)

// Sentinel errors for cell-complex operations.
var (
	// ErrAmbientDim indicates an invalid ambient dimension or a point
	// whose coordinate count does not match the ambient space.
	ErrAmbientDim = errors.New("cells: ambient dimension mismatch")

	// ErrEmptyCell indicates a cell was given no points.
	ErrEmptyCell = errors.New("cells: cell must have at least one point")

	// ErrDimensionMismatch indicates a cell dimension outside the
	// complex, or a relation between cells not one dimension apart.
	ErrDimensionMismatch = errors.New("cells: dimension mismatch")

	// ErrCellNotFound indicates an ID that does not resolve in the arena.
	ErrCellNotFound = errors.New("cells: cell not found")

	// ErrNotRelated indicates an agreement query on a pair of cells
	// that do not share a parent/child relation.
	ErrNotRelated = errors.New("cells: cells are not related")

	// ErrPointIndex indicates a point index out of range.
	ErrPointIndex = errors.New("cells: point index out of range")
)

// Point is a coordinate vector in N-dimensional ambient space.
// Points are owned by the caller and shared by reference; the library
// never mutates coordinates.
type Point []float64

// ID is the stable arena index of a Cell within its Complex.
type ID int

// Cell is a bounded region of a given intrinsic dimension forming part
// of a cell complex. Its ordered points encode its orientation; its
// parent and child maps carry orientation-agreement flags keyed by
// arena ID.
//
// Both relation maps mirror the same flag; see Complex.Link and
// Complex.SetAgreement for the joint-update contract.
type Cell struct {
	id       ID
	dim      int
	points   []Point
	parents  map[ID]bool // parent ID → agreement flag
	children map[ID]bool // child ID → same flag, mirrored
}

// ID returns the cell's stable arena index.
func (c *Cell) ID() ID { return c.id }

// Dim returns the cell's intrinsic dimension (0 = vertex, 1 = edge, …).
func (c *Cell) Dim() int { return c.dim }

// PointCount returns the number of boundary points.
func (c *Cell) PointCount() int { return len(c.points) }

// Point returns the i-th point reference, or ErrPointIndex.
func (c *Cell) Point(i int) (Point, error) {
	if i < 0 || i >= len(c.points) {
		return nil, ErrPointIndex
	}
	return c.points[i], nil
}

// Points returns a copy of the ordered point sequence. The Point values
// themselves are shared references.
//
// Complexity: O(p) where p is the point count.
func (c *Cell) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// IsSimplex reports whether the cell's point count equals its intrinsic
// dimension plus one (triangle, tetrahedron, …).
func (c *Cell) IsSimplex() bool { return len(c.points) == c.dim+1 }

// ParentCount returns the number of parent relations.
func (c *Cell) ParentCount() int { return len(c.parents) }

// ChildCount returns the number of child relations.
func (c *Cell) ChildCount() int { return len(c.children) }

// Parents returns the IDs of all parent cells in ascending order.
//
// Complexity: O(d log d) where d is the parent count.
func (c *Cell) Parents() []ID { return sortedIDs(c.parents) }

// Children returns the IDs of all child cells in ascending order.
//
// Complexity: O(d log d) where d is the child count.
func (c *Cell) Children() []ID { return sortedIDs(c.children) }

// sortedIDs extracts map keys in ascending order for deterministic
// iteration.
func sortedIDs(m map[ID]bool) []ID {
	out := make([]ID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
