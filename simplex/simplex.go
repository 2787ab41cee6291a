// Package simplex implements the wedge representation and the
// determinant-sign orientation test.
package simplex

import (
	"errors"
	"math"

	"github.com/katalvlaran/cellorient/cells"
)

// Sentinel errors for simplex construction and determinant evaluation.
var (
	// ErrDimensionMismatch indicates the cell's intrinsic dimension
	// does not equal the ambient dimension.
	ErrDimensionMismatch = errors.New("simplex: cell dimension does not match ambient dimension")

	// ErrNotSimplex indicates the cell's point count does not equal its
	// intrinsic dimension plus one.
	ErrNotSimplex = errors.New("simplex: point count must equal dimension + 1")

	// ErrNotSquare indicates Det was called on a non-square matrix.
	ErrNotSquare = errors.New("simplex: matrix must be square")
)

// relTol is the relative pivot tolerance below which a determinant is
// reported as Zero rather than carrying sign noise from cancellation.
const relTol = 1e-12

// Sign is the handedness of a simplex: the sign of the determinant of
// its wedge matrix.
type Sign int

const (
	// Negative indicates left-handed vertex ordering.
	Negative Sign = iota - 1
	// Zero indicates degenerate geometry (zero or near-zero volume).
	Zero
	// Positive indicates right-handed vertex ordering.
	Positive
)

// String returns the sign name: "Negative", "Zero", or "Positive".
func (s Sign) String() string {
	switch s {
	case Negative:
		return "Negative"
	case Positive:
		return "Positive"
	default:
		return "Zero"
	}
}

// Simplex is a read-only view of a top-dimensional simplicial cell,
// used solely to compute geometric handedness. It holds point
// references shared with the underlying cell; it never mutates them.
type Simplex struct {
	points []cells.Point
	dim    int
}

// New validates that the cell is simplicial at the ambient dimension
// and wraps it. Fails fast with ErrDimensionMismatch when the cell's
// intrinsic dimension differs from ambient, and ErrNotSimplex when the
// point count is not dimension + 1: computing a determinant for any
// other shape would be meaningless.
func New(c *cells.Cell, ambient int) (*Simplex, error) {
	if c.Dim() != ambient {
		return nil, ErrDimensionMismatch
	}
	if !c.IsSimplex() {
		return nil, ErrNotSimplex
	}
	return &Simplex{points: c.Points(), dim: c.Dim()}, nil
}

// Dim returns the simplex dimension N.
func (s *Simplex) Dim() int { return s.dim }

// Wedge returns the N×N matrix whose rows are the vectors from the
// simplex's first point to each of its remaining N points.
//
// Complexity: O(N²)
func (s *Simplex) Wedge() [][]float64 {
	base := s.points[0]
	rows := make([][]float64, s.dim)
	for i := 1; i <= s.dim; i++ {
		row := make([]float64, s.dim)
		for j := 0; j < s.dim; j++ {
			row[j] = s.points[i][j] - base[j]
		}
		rows[i-1] = row
	}
	return rows
}

// Orientation returns the sign of the determinant of the wedge matrix:
// Positive for right-handed vertex ordering, Negative for left-handed,
// Zero for degenerate geometry. No side effects.
//
// Complexity: O(N³)
func (s *Simplex) Orientation() Sign {
	sign, err := Det(s.Wedge())
	if err != nil {
		// Wedge always produces a square matrix; unreachable for a
		// constructed Simplex.
		return Zero
	}
	return sign
}

// Det computes the sign of the determinant of a square matrix by
// Gaussian elimination with partial pivoting, tracking row-swap parity.
// The input is copied, never mutated. A pivot below relTol relative to
// the largest entry yields Zero.
//
// Determinism: fixed column order and largest-|pivot| row selection
// with lowest-index tie-break.
//
// Complexity: Time O(n³), Space O(n²).
func Det(m [][]float64) (Sign, error) {
	n := len(m)
	if n == 0 {
		return Zero, nil
	}
	// Validate squareness and copy into scratch space.
	a := make([][]float64, n)
	scale := 0.0
	for i, row := range m {
		if len(row) != n {
			return Zero, ErrNotSquare
		}
		a[i] = make([]float64, n)
		copy(a[i], row)
		for _, v := range row {
			if abs := math.Abs(v); abs > scale {
				scale = abs
			}
		}
	}
	if scale == 0 {
		return Zero, nil
	}
	tol := relTol * scale

	sign := Positive
	var col, row, pivot, i int
	for col = 0; col < n; col++ {
		// Partial pivoting: largest |entry| in this column, lowest row wins ties.
		pivot = col
		for row = col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) <= tol {
			return Zero, nil
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			sign = -sign
		}
		if a[col][col] < 0 {
			sign = -sign
		}
		// Eliminate below the pivot.
		for row = col + 1; row < n; row++ {
			factor := a[row][col] / a[col][col]
			if factor == 0 {
				continue
			}
			for i = col; i < n; i++ {
				a[row][i] -= factor * a[col][i]
			}
		}
	}
	return sign, nil
}
