package orient

import "github.com/katalvlaran/cellorient/cells"

// Flip reverses the cell's orientation and propagates the change into
// every relation the cell participates in.
//
// The first two points are swapped (when the cell has at least two),
// which reverses the sign of any determinant computed from the point
// ordering. Every parent-side agreement flag and every child-side
// back-reference is then negated through the joint mutator, so both
// sides of each relation stay equal. No geometry is recomputed.
//
// Flip is an involution: applying it twice restores the point sequence
// bit-exactly and every flag to its original value.
//
// Complexity: O(parents + children)
func Flip(cx *cells.Complex, id cells.ID) error {
	if cx == nil {
		return ErrComplexNil
	}
	c, err := cx.Cell(id)
	if err != nil {
		return err
	}

	if c.PointCount() >= 2 {
		if err = cx.SwapPoints(id, 0, 1); err != nil {
			return err
		}
	}

	for _, parent := range c.Parents() {
		agree, errA := cx.Agreement(parent, id)
		if errA != nil {
			return errA
		}
		if errA = cx.SetAgreement(parent, id, !agree); errA != nil {
			return errA
		}
	}
	for _, child := range c.Children() {
		agree, errA := cx.Agreement(id, child)
		if errA != nil {
			return errA
		}
		if errA = cx.SetAgreement(id, child, !agree); errA != nil {
			return errA
		}
	}
	return nil
}
