package gl

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/curve/pkg/vec"
)

const (
	DefaultSegments = 64
	DefaultMaxDepth = 8
)

// Sampling is the curve resolution policy: which parameters a curve is
// evaluated at to become a line strip.
//
// The parameter range is split into Segments uniform segments. If Tolerance
// is positive, each segment is additionally bisected until the curve value
// at the midpoint is within Tolerance from the chord midpoint, or MaxDepth
// bisections are done.
type Sampling struct {
	// Segments is the number of uniform segments; zero means DefaultSegments.
	Segments int

	// Tolerance is the allowed chord deviation; zero disables subdivision.
	Tolerance float64

	// MaxDepth limits the subdivision of one uniform segment; zero means
	// DefaultMaxDepth.
	MaxDepth int
}

func (s Sampling) Validate() error {
	var mErr *multierror.Error
	if s.Segments < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the amount of segments is negative: %d", s.Segments))
	}
	if s.Tolerance < 0 || math.IsNaN(s.Tolerance) {
		mErr = multierror.Append(mErr, fmt.Errorf("invalid tolerance: %v", s.Tolerance))
	}
	if s.MaxDepth < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("the maximal depth is negative: %d", s.MaxDepth))
	}
	return mErr.ErrorOrNil()
}

func (s Sampling) normalized() Sampling {
	if s.Segments == 0 {
		s.Segments = DefaultSegments
	}
	if s.MaxDepth == 0 {
		s.MaxDepth = DefaultMaxDepth
	}
	return s
}

// Points evaluates a curve over [from, to] per the sampling policy. Both
// ends are always included; a zero-length range yields a single point.
func Points[V vec.Element[V]](
	s Sampling,
	eval func(t float64) V,
	from, to float64,
) []V {
	s = s.normalized()
	first := eval(from)
	if from == to {
		return []V{first}
	}

	result := make([]V, 0, s.Segments+1)
	result = append(result, first)
	prevT, prevV := from, first
	for i := 1; i <= s.Segments; i++ {
		t := from + (to-from)*float64(i)/float64(s.Segments)
		if i == s.Segments {
			t = to
		}
		v := eval(t)
		if s.Tolerance > 0 {
			result = subdivide(result, s, eval, prevT, prevV, t, v, 0)
		}
		result = append(result, v)
		prevT, prevV = t, v
	}
	return result
}

// subdivide appends the points strictly between a and b.
func subdivide[V vec.Element[V]](
	dst []V,
	s Sampling,
	eval func(t float64) V,
	ta float64, va V,
	tb float64, vb V,
	depth int,
) []V {
	if depth >= s.MaxDepth {
		return dst
	}
	tm := (ta + tb) / 2
	vm := eval(tm)
	chordMid := va.Add(vb).Scale(0.5)
	if vec.Distance(vm, chordMid) <= s.Tolerance {
		return dst
	}
	dst = subdivide(dst, s, eval, ta, va, tm, vm, depth+1)
	dst = append(dst, vm)
	dst = subdivide(dst, s, eval, tm, vm, tb, vb, depth+1)
	return dst
}
