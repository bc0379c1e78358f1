// Package linear implements piecewise linear interpolation.
package linear

import (
	"fmt"
	"sort"

	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
)

type Interpolator[F, V any] struct {
	space   field.VectorSpace[F, V]
	order   field.Ordered[F]
	samples []interpolation.Sample[F, V] // sorted by T
}

var _ interpolation.Interpolator[float64, float64] = (*Interpolator[float64, float64])(nil)

// New builds a piecewise linear interpolator. The scalar field of space must
// be ordered. Samples may come in any order; they are copied and sorted.
func New[F, V any](
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) (*Interpolator[F, V], error) {
	order, ok := space.Scalars().(field.Ordered[F])
	if !ok {
		return nil, fmt.Errorf("linear interpolation requires an ordered field, but %T is not", space.Scalars())
	}
	if err := interpolation.ValidateDistinct(interpolation.KindLinear, order, samples); err != nil {
		return nil, err
	}

	sorted := interpolation.Clone(samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return order.Compare(sorted[i].T, sorted[j].T) < 0
	})
	return &Interpolator[F, V]{
		space:   space,
		order:   order,
		samples: sorted,
	}, nil
}

func (*Interpolator[F, V]) Kind() interpolation.Kind {
	return interpolation.KindLinear
}

func (i *Interpolator[F, V]) Samples() []interpolation.Sample[F, V] {
	return interpolation.Clone(i.samples)
}

// Evaluate returns the value on the segment bracketing t. Parameters
// outside the span use the nearest edge segment. A parameter equal to a
// sample's returns that sample's value exactly.
func (i *Interpolator[F, V]) Evaluate(t F) V {
	n := len(i.samples)
	// idx is the first sample with T >= t.
	idx := sort.Search(n, func(k int) bool {
		return i.order.Compare(i.samples[k].T, t) >= 0
	})
	if idx < n && i.order.Equal(i.samples[idx].T, t) {
		return i.samples[idx].Value
	}

	switch {
	case idx == 0:
		idx = 1
	case idx == n:
		idx = n - 1
	}
	return i.segment(idx-1, t)
}

func (i *Interpolator[F, V]) segment(k int, t F) V {
	f := i.order
	a, b := i.samples[k], i.samples[k+1]
	w := field.Div(f, field.Sub(f, t, a.T), field.Sub(f, b.T, a.T))
	delta := i.space.Add(b.Value, i.space.Neg(a.Value))
	return i.space.Add(a.Value, i.space.Scale(w, delta))
}
