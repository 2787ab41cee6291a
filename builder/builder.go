// Package builder implements simplicial complex construction with
// boundary-induced agreement flags.
package builder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cellorient/cells"
)

// Sentinel errors for complex construction.
var (
	// ErrNoPoints indicates an empty point set.
	ErrNoPoints = errors.New("builder: point set must not be empty")

	// ErrVertexIndex indicates a vertex index outside the point set.
	ErrVertexIndex = errors.New("builder: vertex index out of range")

	// ErrDegenerateSimplex indicates an empty simplex or a repeated
	// vertex within one simplex.
	ErrDegenerateSimplex = errors.New("builder: degenerate simplex")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("builder: invalid option supplied")
)

// Option configures complex construction via functional arguments.
type Option func(*Options)

// Options holds tunable construction parameters.
type Options struct {
	// MinDimension stops face generation below this intrinsic
	// dimension. 0 (the default) builds the lattice down to vertices;
	// orientation propagation itself only needs the top two levels.
	MinDimension int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options building the full face lattice.
func DefaultOptions() Options {
	return Options{MinDimension: 0, err: nil}
}

// WithMinDimension limits face generation to dimensions ≥ d.
// Negative d is invalid and surfaces as ErrOptionViolation.
func WithMinDimension(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MinDimension cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MinDimension = d
	}
}

// state carries the construction context of one SimplicialComplex call.
type state struct {
	cx     *cells.Complex
	points []cells.Point
	opts   Options
	byKey  map[string]cells.ID // canonical vertex-set key → cell ID
	verts  map[cells.ID][]int  // cell ID → stored vertex order
}

// SimplicialComplex builds a cell complex in an ambient space of the
// given dimension from shared points and per-top-simplex ordered vertex
// index lists. Each top entry with k indices becomes a (k−1)-cell; all
// boundary faces are generated down to Options.MinDimension and
// deduplicated by vertex set across the whole complex.
//
// Complexity: O(T · 2^k · k²) for T top simplices of order k — the full
// face lattice of a simplex is exponential in its dimension, which is
// small and fixed in practice.
func SimplicialComplex(ambient int, points []cells.Point, tops [][]int, opts ...Option) (*cells.Complex, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	cx, err := cells.NewComplex(ambient)
	if err != nil {
		return nil, err
	}
	st := &state{
		cx:     cx,
		points: points,
		opts:   o,
		byKey:  make(map[string]cells.ID),
		verts:  make(map[cells.ID][]int),
	}

	for _, top := range tops {
		if err = validateSimplex(top, len(points)); err != nil {
			return nil, err
		}
		if _, err = st.addSimplex(top); err != nil {
			return nil, err
		}
	}
	return cx, nil
}

// validateSimplex rejects empty simplices, out-of-range indices, and
// repeated vertices.
func validateSimplex(verts []int, pointCount int) error {
	if len(verts) == 0 {
		return ErrDegenerateSimplex
	}
	seen := make(map[int]struct{}, len(verts))
	for _, v := range verts {
		if v < 0 || v >= pointCount {
			return ErrVertexIndex
		}
		if _, dup := seen[v]; dup {
			return ErrDegenerateSimplex
		}
		seen[v] = struct{}{}
	}
	return nil
}

// addSimplex creates the cell for the given ordered vertex list unless
// its vertex set already exists, then recursively creates and links its
// boundary faces.
func (st *state) addSimplex(verts []int) (cells.ID, error) {
	key := canonicalKey(verts)
	if id, ok := st.byKey[key]; ok {
		return id, nil
	}

	pts := make([]cells.Point, len(verts))
	for i, v := range verts {
		pts[i] = st.points[v]
	}
	id, err := st.cx.AddCell(len(verts)-1, pts)
	if err != nil {
		return 0, err
	}
	stored := make([]int, len(verts))
	copy(stored, verts)
	st.byKey[key] = id
	st.verts[id] = stored

	// Recurse into boundary faces, omit-vertex order.
	if len(verts)-1 <= st.opts.MinDimension {
		return id, nil
	}
	face := make([]int, 0, len(verts)-1)
	for omit := 0; omit < len(verts); omit++ {
		face = face[:0]
		for i, v := range verts {
			if i != omit {
				face = append(face, v)
			}
		}
		fid, errFace := st.addSimplex(face)
		if errFace != nil {
			return 0, errFace
		}
		// Induced orientation: (−1)^omit times the parity of the
		// permutation taking the induced sequence to the stored one.
		agree := omit%2 == 0
		if permutationParity(face, st.verts[fid]) < 0 {
			agree = !agree
		}
		if errLink := st.cx.Link(id, fid, agree); errLink != nil {
			return 0, errLink
		}
	}
	return id, nil
}

// canonicalKey builds the order-independent identity of a vertex set.
func canonicalKey(verts []int) string {
	sorted := make([]int, len(verts))
	copy(sorted, verts)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// permutationParity returns +1 or −1 for the permutation taking
// sequence from to sequence to. Both must hold the same distinct
// elements; repeated elements never occur past validateSimplex.
func permutationParity(from, to []int) int {
	work := make([]int, len(from))
	copy(work, from)
	parity := 1
	for i, want := range to {
		if work[i] == want {
			continue
		}
		for j := i + 1; j < len(work); j++ {
			if work[j] == want {
				work[i], work[j] = work[j], work[i]
				parity = -parity
				break
			}
		}
	}
	return parity
}
