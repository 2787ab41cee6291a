// Package orient defines sentinel errors for orientation propagation.
package orient

import "errors"

// Sentinel errors for orientation passes.
var (
	// ErrComplexNil is returned if a nil complex pointer is passed.
	ErrComplexNil = errors.New("orient: complex is nil")

	// ErrGraphMismatch is returned when the adjacency graph's order
	// does not match the cell collection's length.
	ErrGraphMismatch = errors.New("orient: graph order does not match cell collection")

	// ErrMissingFace is returned when the adjacency graph links two
	// cells but the face map holds no entry for the ordered pair — a
	// contract violation of the adjacency builder.
	ErrMissingFace = errors.New("orient: face map entry missing for adjacent pair")
)
