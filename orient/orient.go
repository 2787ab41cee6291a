// Package orient implements the single-cell, collection, and
// whole-complex orientation entry points.
package orient

import (
	"sort"

	"github.com/katalvlaran/cellorient/adjacency"
	"github.com/katalvlaran/cellorient/cells"
	"github.com/katalvlaran/cellorient/graph"
	"github.com/katalvlaran/cellorient/simplex"
)

// OrientCell applies the single-cell orientation rule. Three mutually
// exclusive cases cover every observed state:
//
//   - no parents and simplicial at the ambient dimension: run the
//     geometric test and flip iff the sign is Negative; a Zero sign
//     (degenerate geometry) leaves the cell as-is;
//   - exactly one parent whose agreement flag is false: flip to align
//     with that parent;
//   - anything else (parentless non-simplex, or several parents): leave
//     the cell unchanged — an encompassing component or complex-level
//     call must orient it instead.
func OrientCell(cx *cells.Complex, id cells.ID) error {
	if cx == nil {
		return ErrComplexNil
	}
	c, err := cx.Cell(id)
	if err != nil {
		return err
	}

	parents := c.Parents()
	switch len(parents) {
	case 0:
		ok, errTop := cx.IsTopSimplex(id)
		if errTop != nil {
			return errTop
		}
		if !ok {
			return nil
		}
		s, errNew := simplex.New(c, cx.AmbientDim())
		if errNew != nil {
			return errNew
		}
		if s.Orientation() == simplex.Negative {
			return Flip(cx, id)
		}
	case 1:
		agree, errA := cx.Agreement(parents[0], id)
		if errA != nil {
			return errA
		}
		if !agree {
			return Flip(cx, id)
		}
	}
	return nil
}

// OrientCells orients a same-dimension cell collection for mutual
// consistency: it builds the shared-face adjacency graph and face map,
// splits the collection into connected components, and runs
// OrientComponent on each with the component's lowest position as root.
//
// Components are processed in descending root-cell dimension (stable on
// ties). Within one same-dimension collection every root shares the
// same dimension, but the ordering matters when this entry point is
// invoked transitively across complex levels: higher-dimensional
// components must settle before the cells depending on them as parents
// are visited.
func OrientCells(cx *cells.Complex, ids []cells.ID) error {
	if cx == nil {
		return ErrComplexNil
	}
	if len(ids) == 0 {
		return nil
	}

	g, faces, err := adjacency.Build(cx, ids)
	if err != nil {
		return err
	}
	count, label, err := graph.ConnectedComponents(g)
	if err != nil {
		return err
	}

	// Component roots: lowest position of each component. Labels are
	// assigned in ascending first-seen order, so one ascending scan
	// fills every slot.
	roots := make([]int, count)
	for i := range roots {
		roots[i] = -1
	}
	for pos, comp := range label {
		if roots[comp] == -1 {
			roots[comp] = pos
		}
	}

	order := make([]int, count)
	dims := make([]int, count)
	for comp, root := range roots {
		order[comp] = comp
		c, errCell := cx.Cell(ids[root])
		if errCell != nil {
			return errCell
		}
		dims[comp] = c.Dim()
	}
	sort.SliceStable(order, func(i, j int) bool {
		return dims[order[i]] > dims[order[j]]
	})

	for _, comp := range order {
		if err = OrientComponent(cx, ids, g, faces, roots[comp]); err != nil {
			return err
		}
	}
	return nil
}

// OrientComplex orients all top-dimensional cells of a complex.
//
// When the top dimension equals the ambient dimension, every top cell
// can self-determine from its own embedding geometry and is oriented
// independently via OrientCell. Otherwise no direct geometric test
// applies and only relative consistency between cells is achievable, so
// the whole top level is oriented collectively via OrientCells. An
// empty complex is a no-op.
func OrientComplex(cx *cells.Complex) error {
	if cx == nil {
		return ErrComplexNil
	}
	top := cx.TopDim()
	if top < 0 {
		return nil
	}

	ids := cx.TopCells()
	if top == cx.AmbientDim() {
		for _, id := range ids {
			if err := OrientCell(cx, id); err != nil {
				return err
			}
		}
		return nil
	}
	return OrientCells(cx, ids)
}
