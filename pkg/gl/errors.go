package gl

import (
	"errors"
	"fmt"
)

// ErrDestroyed is returned by operations on a destroyed array object.
var ErrDestroyed = errors.New("the array object is destroyed")

// ErrLayoutMismatch is returned when a vector's arity differs from the
// number of components of the array object's layout.
type ErrLayoutMismatch struct {
	Expected int
	Actual   int

	// Index of the first offending vector in the input.
	Index int
}

func (e *ErrLayoutMismatch) Error() string {
	return fmt.Sprintf("layout mismatch: vector #%d has %d components, the layout expects %d", e.Index, e.Actual, e.Expected)
}

// ErrOutOfRange is returned when a partial update does not fit into the
// currently staged vertices.
type ErrOutOfRange struct {
	Offset      int
	Count       int
	VertexCount int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("range [%d, %d) is out of the staged vertices [0, %d)", e.Offset, e.Offset+e.Count, e.VertexCount)
}
