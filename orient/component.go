package orient

import (
	"fmt"

	"github.com/katalvlaran/cellorient/adjacency"
	"github.com/katalvlaran/cellorient/cells"
	"github.com/katalvlaran/cellorient/graph"
)

// OrientComponent orients every cell of one connected component of the
// shared-face adjacency graph consistently with the component's root.
//
// The root cell is oriented first via the single-cell rule, then BFS
// spreads outward: cells are processed in ascending distance from the
// root (ascending index on ties), and each cell c2 with BFS predecessor
// c1 is flipped iff the shared face carries equal agreement flags
// relative to c1 and c2 — adjacent cells must induce opposite
// directions on a shared face. Cells unreachable from root are left
// untouched.
//
// If the component is orientable, every reached cell ends consistent
// with the root. If not, the result is whatever the traversal order
// produces; no error is raised for non-orientability.
//
// A graph edge without a face-map entry is an adjacency contract
// violation and surfaces as ErrMissingFace.
//
// Complexity: O(V + E) plus one determinant test for the root.
func OrientComponent(cx *cells.Complex, ids []cells.ID, g *graph.Graph, faces adjacency.FaceMap, root int) error {
	if cx == nil {
		return ErrComplexNil
	}
	if g == nil {
		return graph.ErrGraphNil
	}
	if g.Order() != len(ids) {
		return ErrGraphMismatch
	}
	if root < 0 || root >= len(ids) {
		return graph.ErrVertexRange
	}

	// Seed the component: the root self-determines (or stays as-is).
	if err := OrientCell(cx, ids[root]); err != nil {
		return err
	}

	res, err := graph.BFS(g, root)
	if err != nil {
		return err
	}

	// res.Order is ascending by distance with the documented tie-break;
	// position 0 is the root itself.
	for _, v := range res.Order[1:] {
		c1 := ids[res.Parent[v]]
		c2 := ids[v]

		f, ok := faces.Face(c1, c2)
		if !ok {
			return fmt.Errorf("%w: cells %d and %d", ErrMissingFace, c1, c2)
		}
		a1, errA := cx.Agreement(c1, f)
		if errA != nil {
			return errA
		}
		a2, errA := cx.Agreement(c2, f)
		if errA != nil {
			return errA
		}
		// Equal flags mean both parents induce the same direction on
		// the face — the inconsistent case; flip the newcomer.
		if a1 == a2 {
			if errA = Flip(cx, c2); errA != nil {
				return errA
			}
		}
	}
	return nil
}
