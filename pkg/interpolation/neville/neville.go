// Package neville implements polynomial interpolation with Neville's
// recursive tableau.
//
// The result equals the Lagrange polynomial but is built from convex-like
// combinations of lower degree interpolants, which keeps it better
// conditioned. Evaluation is O(n²); extending the sample set by one point
// is O(n), both for a built Interpolator (Add) and for a tableau fixed at
// one query parameter (Tableau.Push).
package neville

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
	if err := interpolation.ValidateDistinct(interpolation.KindNeville, space.Scalars(), samples); err != nil {
		return nil, err
	}
	return &Interpolator[F, V]{
		space:   space,
		samples: interpolation.Clone(samples),
	}, nil
}

func (*Interpolator[F, V]) Kind() interpolation.Kind {
	return interpolation.KindNeville
}

func (i *Interpolator[F, V]) Samples() []interpolation.Sample[F, V] {
	return interpolation.Clone(i.samples)
}

// Add returns a new interpolator with one more sample. The receiver is not
// modified.
func (i *Interpolator[F, V]) Add(sample interpolation.Sample[F, V]) (*Interpolator[F, V], error) {
	f := i.space.Scalars()
	for idx, s := range i.samples {
		if f.Near(s.T, sample.T) {
			return nil, interpolation.NewErrDegenerateInput(
				interpolation.KindNeville,
				"parameters are not pairwise distinct",
				interpolation.ErrDuplicateParameter{First: idx, Second: len(i.samples)},
			)
		}
	}

	samples := make([]interpolation.Sample[F, V], len(i.samples), len(i.samples)+1)
	copy(samples, i.samples)
	return &Interpolator[F, V]{
		space:   i.space,
		samples: append(samples, sample),
	}, nil
}

// Evaluate runs the tableau in place:
//
//	P[i..i+m](t) = ((t - t[i+m])·P[i..i+m-1](t) + (t[i] - t)·P[i+1..i+m](t)) / (t[i] - t[i+m])
func (i *Interpolator[F, V]) Evaluate(t F) V {
	f := i.space.Scalars()
	n := len(i.samples)
	p := make([]V, n)
	for k, s := range i.samples {
		p[k] = s.Value
	}

	for m := 1; m < n; m++ {
		for k := 0; k < n-m; k++ {
			left := field.Sub(f, t, i.samples[k+m].T)
			right := field.Sub(f, i.samples[k].T, t)
			inv := f.Inv(field.Sub(f, i.samples[k].T, i.samples[k+m].T))
			p[k] = i.space.Add(
				i.space.Scale(f.Mul(left, inv), p[k]),
				i.space.Scale(f.Mul(right, inv), p[k+1]),
			)
		}
	}
	return p[0]
}
