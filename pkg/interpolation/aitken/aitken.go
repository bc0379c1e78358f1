// Package aitken implements polynomial interpolation with Aitken's scheme.
//
// Aitken builds the same interpolating polynomial as Neville, but every
// stage pivots on a fixed sample (the k-th) instead of sliding a window, so
// intermediate values are interpolants through {t_0..t_k, t_i}. Results match
// neville and lagrange within floating-point tolerance.
package aitken

import (
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
)

type Interpolator[F, V any] struct {
	space   field.VectorSpace[F, V]
	samples []interpolation.Sample[F, V]
}

var _ interpolation.Interpolator[float64, float64] = (*Interpolator[float64, float64])(nil)

func New[F, V any](
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) (*Interpolator[F, V], error) {
	if err := interpolation.ValidateDistinct(interpolation.KindAitken, space.Scalars(), samples); err != nil {
		return nil, err
	}
	return &Interpolator[F, V]{
		space:   space,
		samples: interpolation.Clone(samples),
	}, nil
}

func (*Interpolator[F, V]) Kind() interpolation.Kind {
	return interpolation.KindAitken
}

func (i *Interpolator[F, V]) Samples() []interpolation.Sample[F, V] {
	return interpolation.Clone(i.samples)
}

// Evaluate runs the scheme in place:
//
//	p[i] = ((t - t[k])·p[i] - (t - t[i])·p[k]) / (t[i] - t[k]),  k < i
func (i *Interpolator[F, V]) Evaluate(t F) V {
	f := i.space.Scalars()
	n := len(i.samples)
	p := make([]V, n)
	for k, s := range i.samples {
		p[k] = s.Value
	}

	for k := 0; k < n-1; k++ {
		tk := i.samples[k].T
		dk := field.Sub(f, t, tk)
		for j := k + 1; j < n; j++ {
			tj := i.samples[j].T
			inv := f.Inv(field.Sub(f, tj, tk))
			p[j] = i.space.Add(
				i.space.Scale(f.Mul(dk, inv), p[j]),
				i.space.Neg(i.space.Scale(f.Mul(field.Sub(f, t, tj), inv), p[k])),
			)
		}
	}
	return p[n-1]
}
