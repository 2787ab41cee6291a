// Package cells provides the Complex arena: construction, relation
// mutators, and dimension-level queries.
//
// All mutators validate their inputs and fail fast with sentinel
// errors; none of them panic on caller input.
package cells

// Complex is a stratified collection of cells embedded in an ambient
// space of fixed dimension. It owns every Cell in its arena; cells
// reference each other only by ID.
//
// A Complex is not safe for concurrent mutation: orientation passes
// take exclusive ownership for their duration.
type Complex struct {
	ambient int
	arena   []*Cell
	levels  [][]ID // levels[k] lists the IDs of all k-dimensional cells
}

// NewComplex creates an empty Complex embedded in an ambient space of
// the given dimension. Returns ErrAmbientDim if ambient < 1.
//
// Complexity: O(ambient)
func NewComplex(ambient int) (*Complex, error) {
	if ambient < 1 {
		return nil, ErrAmbientDim
	}
	return &Complex{
		ambient: ambient,
		levels:  make([][]ID, ambient+1),
	}, nil
}

// AmbientDim returns the dimension of the embedding space.
func (cx *Complex) AmbientDim() int { return cx.ambient }

// Len returns the total number of cells in the arena.
func (cx *Complex) Len() int { return len(cx.arena) }

// Cell resolves an ID to its Cell, or returns ErrCellNotFound.
//
// Complexity: O(1)
func (cx *Complex) Cell(id ID) (*Cell, error) {
	if id < 0 || int(id) >= len(cx.arena) {
		return nil, ErrCellNotFound
	}
	return cx.arena[id], nil
}

// AddCell appends a new cell of the given intrinsic dimension to the
// arena and returns its stable ID.
//
// The dimension must lie in [0, ambient]; every point must have exactly
// ambient coordinates; at least one point is required. The point slice
// is copied, the Point values are shared by reference.
//
// Complexity: O(p) where p is the point count.
func (cx *Complex) AddCell(dim int, points []Point) (ID, error) {
	if dim < 0 || dim > cx.ambient {
		return 0, ErrDimensionMismatch
	}
	if len(points) == 0 {
		return 0, ErrEmptyCell
	}
	for _, p := range points {
		if len(p) != cx.ambient {
			return 0, ErrAmbientDim
		}
	}

	id := ID(len(cx.arena))
	c := &Cell{
		id:       id,
		dim:      dim,
		points:   make([]Point, len(points)),
		parents:  make(map[ID]bool),
		children: make(map[ID]bool),
	}
	copy(c.points, points)

	cx.arena = append(cx.arena, c)
	cx.levels[dim] = append(cx.levels[dim], id)
	return id, nil
}

// Link establishes the boundary relation parent→child with the given
// agreement flag, writing both sides of the relation together.
//
// The parent must be exactly one dimension above the child, otherwise
// ErrDimensionMismatch. Linking an already-linked pair overwrites the
// flag on both sides.
//
// Complexity: O(1)
func (cx *Complex) Link(parent, child ID, agree bool) error {
	p, err := cx.Cell(parent)
	if err != nil {
		return err
	}
	c, err := cx.Cell(child)
	if err != nil {
		return err
	}
	if p.dim != c.dim+1 {
		return ErrDimensionMismatch
	}
	// Joint update: both sides always carry the same value.
	c.parents[parent] = agree
	p.children[child] = agree
	return nil
}

// Agreement returns the orientation-agreement flag stored on the
// parent→child relation. Returns ErrNotRelated if no such relation
// exists, and ErrCellNotFound for unresolvable IDs.
//
// Complexity: O(1)
func (cx *Complex) Agreement(parent, child ID) (bool, error) {
	p, err := cx.Cell(parent)
	if err != nil {
		return false, err
	}
	if _, err = cx.Cell(child); err != nil {
		return false, err
	}
	agree, ok := p.children[child]
	if !ok {
		return false, ErrNotRelated
	}
	return agree, nil
}

// SetAgreement rewrites the agreement flag of an existing parent→child
// relation on both sides together, preserving the joint-update
// invariant. Returns ErrNotRelated if the relation does not exist.
//
// Complexity: O(1)
func (cx *Complex) SetAgreement(parent, child ID, agree bool) error {
	p, err := cx.Cell(parent)
	if err != nil {
		return err
	}
	c, err := cx.Cell(child)
	if err != nil {
		return err
	}
	if _, ok := p.children[child]; !ok {
		return ErrNotRelated
	}
	p.children[child] = agree
	c.parents[parent] = agree
	return nil
}

// SwapPoints exchanges the i-th and j-th entries of the cell's point
// sequence in place. Swapping any two points reverses the sign of a
// determinant computed from the ordering.
//
// Complexity: O(1)
func (cx *Complex) SwapPoints(id ID, i, j int) error {
	c, err := cx.Cell(id)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(c.points) || j < 0 || j >= len(c.points) {
		return ErrPointIndex
	}
	c.points[i], c.points[j] = c.points[j], c.points[i]
	return nil
}

// Level returns a copy of the IDs of all cells of intrinsic dimension
// k, in insertion order. Returns nil for k outside [0, ambient].
//
// Complexity: O(n) for the copy.
func (cx *Complex) Level(k int) []ID {
	if k < 0 || k > cx.ambient {
		return nil
	}
	out := make([]ID, len(cx.levels[k]))
	copy(out, cx.levels[k])
	return out
}

// TopDim returns the highest dimension for which the complex holds at
// least one cell, or -1 for an empty complex.
//
// Complexity: O(ambient)
func (cx *Complex) TopDim() int {
	for k := cx.ambient; k >= 0; k-- {
		if len(cx.levels[k]) > 0 {
			return k
		}
	}
	return -1
}

// TopCells returns the IDs of all top-dimensional cells, in insertion
// order. Returns nil for an empty complex.
func (cx *Complex) TopCells() []ID {
	top := cx.TopDim()
	if top < 0 {
		return nil
	}
	return cx.Level(top)
}

// IsTopSimplex reports whether the cell is simplicial at the ambient
// dimension: its intrinsic dimension equals the ambient dimension and
// its point count equals dimension + 1. Only such cells can be oriented
// directly from embedding geometry.
func (cx *Complex) IsTopSimplex(id ID) (bool, error) {
	c, err := cx.Cell(id)
	if err != nil {
		return false, err
	}
	return c.dim == cx.ambient && c.IsSimplex(), nil
}
