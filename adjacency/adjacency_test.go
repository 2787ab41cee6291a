package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellorient/adjacency"
	"github.com/katalvlaran/cellorient/cells"
)

// twoTriangles builds two triangles sharing one edge:
//
//	p2
//	╱╲
//	╱  ╲
//	╱____╲___p3
//	p0    p1
//
// Returns the complex, both triangle IDs, and the shared edge ID.
func twoTriangles(t *testing.T) (*cells.Complex, cells.ID, cells.ID, cells.ID) {
	t.Helper()
	cx, err := cells.NewComplex(2)
	require.NoError(t, err)

	p0 := cells.Point{0, 0}
	p1 := cells.Point{1, 0}
	p2 := cells.Point{0.5, 1}
	p3 := cells.Point{1.5, 1}

	triA, err := cx.AddCell(2, []cells.Point{p0, p1, p2})
	require.NoError(t, err)
	triB, err := cx.AddCell(2, []cells.Point{p1, p3, p2})
	require.NoError(t, err)
	shared, err := cx.AddCell(1, []cells.Point{p1, p2})
	require.NoError(t, err)

	require.NoError(t, cx.Link(triA, shared, true))
	require.NoError(t, cx.Link(triB, shared, true))

	// boundary edges belonging to a single triangle each
	for _, pts := range [][]cells.Point{{p0, p1}, {p2, p0}} {
		e, errAdd := cx.AddCell(1, pts)
		require.NoError(t, errAdd)
		require.NoError(t, cx.Link(triA, e, true))
	}
	for _, pts := range [][]cells.Point{{p1, p3}, {p3, p2}} {
		e, errAdd := cx.AddCell(1, pts)
		require.NoError(t, errAdd)
		require.NoError(t, cx.Link(triB, e, true))
	}
	return cx, triA, triB, shared
}

// TestBuild_SharedEdge verifies the graph edge and both face-map orderings.
func TestBuild_SharedEdge(t *testing.T) {
	cx, triA, triB, shared := twoTriangles(t)

	g, faces, err := adjacency.Build(cx, []cells.ID{triA, triB})
	require.NoError(t, err)

	require.Equal(t, 2, g.Order())
	has, err := g.HasEdge(0, 1)
	require.NoError(t, err)
	assert.True(t, has)

	f, ok := faces.Face(triA, triB)
	require.True(t, ok)
	assert.Equal(t, shared, f)
	f, ok = faces.Face(triB, triA)
	require.True(t, ok)
	assert.Equal(t, shared, f)

	// exactly one adjacent pair, both orderings
	assert.Len(t, faces, 2)
}

// TestBuild_NoSharedFace yields an edgeless graph and an empty face map.
func TestBuild_NoSharedFace(t *testing.T) {
	cx, err := cells.NewComplex(2)
	require.NoError(t, err)

	a, err := cx.AddCell(2, []cells.Point{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	b, err := cx.AddCell(2, []cells.Point{{5, 5}, {6, 5}, {5, 6}})
	require.NoError(t, err)

	g, faces, err := adjacency.Build(cx, []cells.ID{a, b})
	require.NoError(t, err)
	has, err := g.HasEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, faces)
}

// TestBuild_Validation covers nil complex, bad IDs, and mixed dimensions.
func TestBuild_Validation(t *testing.T) {
	_, _, err := adjacency.Build(nil, nil)
	assert.ErrorIs(t, err, adjacency.ErrComplexNil)

	cx, err := cells.NewComplex(2)
	require.NoError(t, err)
	tri, err := cx.AddCell(2, []cells.Point{{0, 0}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	edge, err := cx.AddCell(1, []cells.Point{{0, 0}, {1, 0}})
	require.NoError(t, err)

	_, _, err = adjacency.Build(cx, []cells.ID{tri, 99})
	assert.ErrorIs(t, err, cells.ErrCellNotFound)

	_, _, err = adjacency.Build(cx, []cells.ID{tri, edge})
	assert.ErrorIs(t, err, adjacency.ErrMixedDimensions)
}

// TestBuild_FanOfThree links three triangles around one shared edge
// (non-manifold fan): all three pairs become adjacent through it.
func TestBuild_FanOfThree(t *testing.T) {
	cx, err := cells.NewComplex(2)
	require.NoError(t, err)

	var tris []cells.ID
	for i := 0; i < 3; i++ {
		id, errAdd := cx.AddCell(2, []cells.Point{{0, 0}, {1, 0}, {0, float64(i) + 1}})
		require.NoError(t, errAdd)
		tris = append(tris, id)
	}
	hinge, err := cx.AddCell(1, []cells.Point{{0, 0}, {1, 0}})
	require.NoError(t, err)
	for _, tri := range tris {
		require.NoError(t, cx.Link(tri, hinge, true))
	}

	g, faces, err := adjacency.Build(cx, tris)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			has, errEdge := g.HasEdge(i, j)
			require.NoError(t, errEdge)
			assert.True(t, has, "pair (%d,%d)", i, j)
		}
	}
	assert.Len(t, faces, 6) // 3 pairs × 2 orderings
}
