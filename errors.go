package poly2mesh

import (
	"errors"
	"fmt"
)

// ErrPrecondition is returned when a caller violates a construction-time
// invariant: too few vertices, too small a stride, an attribute slice that
// overflows the stride, or an attribute column of the wrong length.
var ErrPrecondition = errors.New("poly2mesh: precondition violated")

// ErrDegenerateGeometry is returned when the monotone partitioner cannot
// make progress on an input ring (every vertex collinear, including the
// case where all vertices share one x). No buffer is produced when this
// error is returned.
var ErrDegenerateGeometry = errors.New("poly2mesh: degenerate geometry")

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

func degenerateGeometryf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDegenerateGeometry, fmt.Sprintf(format, args...))
}

// internalInvariant panics with a descriptive message. Reserved for
// conditions the source guards defensively (a triangulator write cursor
// overflowing its budget of 3*(k-2) indices) that should never happen for
// any y-monotone ring and indicate a bug in the kernel itself, not bad
// caller input.
func internalInvariant(format string, args ...any) {
	panic("poly2mesh: internal invariant violated: " + fmt.Sprintf(format, args...))
}
