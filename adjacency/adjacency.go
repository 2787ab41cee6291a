// Package adjacency implements shared-face graph and face-map
// construction for same-dimension cell collections.
package adjacency

import (
	"errors"
	"sort"

	"github.com/katalvlaran/cellorient/cells"
	"github.com/katalvlaran/cellorient/graph"
)

// Sentinel errors for adjacency construction.
var (
	// ErrComplexNil is returned if a nil complex pointer is passed.
	ErrComplexNil = errors.New("adjacency: complex is nil")

	// ErrMixedDimensions is returned when the cell collection holds
	// cells of differing intrinsic dimension.
	ErrMixedDimensions = errors.New("adjacency: cells must share one dimension")
)

// Pair is an ordered pair of adjacent cells, keyed by arena ID.
type Pair struct {
	C1, C2 cells.ID
}

// FaceMap resolves an ordered pair of adjacent cells to the boundary
// face they share. It contains an entry for both orderings of every
// adjacent pair.
type FaceMap map[Pair]cells.ID

// Face looks up the shared face for the ordered pair (c1, c2).
func (fm FaceMap) Face(c1, c2 cells.ID) (cells.ID, bool) {
	f, ok := fm[Pair{C1: c1, C2: c2}]
	return f, ok
}

// Build constructs the shared-face adjacency graph and face map for the
// given same-dimension cell collection. Graph vertices are positions in
// ids; FaceMap keys are arena-ID pairs.
//
// Two cells are adjacent iff at least one cell is a child of both; when
// several faces are shared, the one with the lowest arena ID is
// recorded.
func Build(cx *cells.Complex, ids []cells.ID) (*graph.Graph, FaceMap, error) {
	if cx == nil {
		return nil, nil, ErrComplexNil
	}

	// Invert child relations: face ID → positions of its parents in ids.
	parentsOf := make(map[cells.ID][]int)
	dim := -1
	for pos, id := range ids {
		c, err := cx.Cell(id)
		if err != nil {
			return nil, nil, err
		}
		if dim == -1 {
			dim = c.Dim()
		} else if c.Dim() != dim {
			return nil, nil, ErrMixedDimensions
		}
		for _, child := range c.Children() {
			parentsOf[child] = append(parentsOf[child], pos)
		}
	}

	g, err := graph.NewGraph(len(ids))
	if err != nil {
		return nil, nil, err
	}
	faces := make(FaceMap)

	// Ascending face-ID order makes the lowest shared face win when two
	// cells touch along more than one.
	faceIDs := make([]cells.ID, 0, len(parentsOf))
	for f := range parentsOf {
		faceIDs = append(faceIDs, f)
	}
	sort.Slice(faceIDs, func(i, j int) bool { return faceIDs[i] < faceIDs[j] })

	for _, f := range faceIDs {
		owners := parentsOf[f]
		for i := 0; i < len(owners); i++ {
			for j := i + 1; j < len(owners); j++ {
				if err = g.AddEdge(owners[i], owners[j]); err != nil {
					return nil, nil, err
				}
				c1, c2 := ids[owners[i]], ids[owners[j]]
				if _, ok := faces[Pair{C1: c1, C2: c2}]; !ok {
					faces[Pair{C1: c1, C2: c2}] = f
					faces[Pair{C1: c2, C2: c1}] = f
				}
			}
		}
	}
	return g, faces, nil
}
