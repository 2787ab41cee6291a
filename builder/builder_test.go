package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellorient/builder"
	"github.com/katalvlaran/cellorient/cells"
)

var trianglePoints = []cells.Point{{0, 0}, {1, 0}, {0.5, 1}, {1.5, 1}}

// TestSimplicialComplex_SingleTriangle checks the full face lattice of
// one triangle: 1 face, 3 edges, 3 vertices, deterministic IDs.
func TestSimplicialComplex_SingleTriangle(t *testing.T) {
	cx, err := builder.SimplicialComplex(2, trianglePoints, [][]int{{0, 1, 2}})
	require.NoError(t, err)

	assert.Equal(t, 7, cx.Len())
	assert.Len(t, cx.Level(2), 1)
	assert.Len(t, cx.Level(1), 3)
	assert.Len(t, cx.Level(0), 3)
	assert.Equal(t, 2, cx.TopDim())

	// Construction order: triangle first, then faces in omit-vertex order.
	tri := cells.ID(0)
	c, err := cx.Cell(tri)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Dim())
	assert.Equal(t, 3, c.ChildCount())

	// Boundary flags follow the (−1)^i rule: omit-0 and omit-2 faces
	// agree with their induced orientation, omit-1 does not.
	wantFlags := map[cells.ID]bool{
		1: true,  // edge (p1,p2), omit 0
		4: false, // edge (p0,p2), omit 1
		6: true,  // edge (p0,p1), omit 2
	}
	for edge, want := range wantFlags {
		agree, errA := cx.Agreement(tri, edge)
		require.NoError(t, errA, "edge %d", edge)
		assert.Equal(t, want, agree, "edge %d", edge)
	}
}

// TestSimplicialComplex_SharedFaceDedup verifies a face shared by two
// consistently ordered triangles is created once with differing flags.
func TestSimplicialComplex_SharedFaceDedup(t *testing.T) {
	// both counter-clockwise; they share the edge {1, 2}
	cx, err := builder.SimplicialComplex(2, trianglePoints, [][]int{
		{0, 1, 2},
		{1, 3, 2},
	})
	require.NoError(t, err)

	// 2 triangles + 5 distinct edges + 4 vertices
	assert.Equal(t, 11, cx.Len())
	assert.Len(t, cx.Level(2), 2)
	assert.Len(t, cx.Level(1), 5)
	assert.Len(t, cx.Level(0), 4)

	triA, triB := cells.ID(0), cells.ID(7)
	shared := cells.ID(1) // edge (p1,p2), created by triA's omit-0 face

	a, err := cx.Agreement(triA, shared)
	require.NoError(t, err)
	b, err := cx.Agreement(triB, shared)
	require.NoError(t, err)
	// consistent input orderings induce opposite directions on the
	// shared face, so exactly one parent agrees with its stored order
	assert.NotEqual(t, a, b)
}

// TestSimplicialComplex_MinDimension stops the lattice above vertices.
func TestSimplicialComplex_MinDimension(t *testing.T) {
	cx, err := builder.SimplicialComplex(2, trianglePoints, [][]int{{0, 1, 2}},
		builder.WithMinDimension(1))
	require.NoError(t, err)

	assert.Equal(t, 4, cx.Len()) // triangle + 3 edges, no vertices
	assert.Empty(t, cx.Level(0))

	_, err = builder.SimplicialComplex(2, trianglePoints, nil,
		builder.WithMinDimension(-1))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

// TestSimplicialComplex_Validation covers input rejection.
func TestSimplicialComplex_Validation(t *testing.T) {
	_, err := builder.SimplicialComplex(2, nil, [][]int{{0, 1, 2}})
	assert.ErrorIs(t, err, builder.ErrNoPoints)

	_, err = builder.SimplicialComplex(2, trianglePoints, [][]int{{0, 1, 9}})
	assert.ErrorIs(t, err, builder.ErrVertexIndex)

	_, err = builder.SimplicialComplex(2, trianglePoints, [][]int{{0, 1, 1}})
	assert.ErrorIs(t, err, builder.ErrDegenerateSimplex)

	_, err = builder.SimplicialComplex(2, trianglePoints, [][]int{nil})
	assert.ErrorIs(t, err, builder.ErrDegenerateSimplex)

	// coordinates must match the ambient dimension
	_, err = builder.SimplicialComplex(3, trianglePoints, [][]int{{0, 1, 2}})
	assert.ErrorIs(t, err, cells.ErrAmbientDim)
}

// TestSimplicialComplex_Tetrahedron checks lattice counts in 3D.
func TestSimplicialComplex_Tetrahedron(t *testing.T) {
	pts := []cells.Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	cx, err := builder.SimplicialComplex(3, pts, [][]int{{0, 1, 2, 3}})
	require.NoError(t, err)

	assert.Len(t, cx.Level(3), 1)
	assert.Len(t, cx.Level(2), 4)
	assert.Len(t, cx.Level(1), 6)
	assert.Len(t, cx.Level(0), 4)
	assert.Equal(t, 15, cx.Len())
}
