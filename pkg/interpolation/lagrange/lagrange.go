// Package lagrange implements polynomial interpolation in the classical
// Lagrange basis.
//
// The evaluation is a direct sum of basis polynomials, O(n²) per call. It
// is numerically sensitive for many samples or clustered parameters
// (Runge's phenomenon, cancellation in the basis products); prefer neville
// or krogh when n grows beyond a couple dozen.
package lagrange

import (
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
)

type Interpolator[F, V any] struct {
	space   field.VectorSpace[F, V]
	samples []interpolation.Sample[F, V]

	// weights[j] = 1 / prod_{m != j} (t_j - t_m)
	weights []F
}

var _ interpolation.Interpolator[float64, float64] = (*Interpolator[float64, float64])(nil)

func New[F, V any](
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) (*Interpolator[F, V], error) {
	f := space.Scalars()
	if err := interpolation.ValidateDistinct(interpolation.KindLagrange, f, samples); err != nil {
		return nil, err
	}

	samples = interpolation.Clone(samples)
	weights := make([]F, len(samples))
	for j := range samples {
		denominator := f.One()
		for m := range samples {
			if m == j {
				continue
			}
			denominator = f.Mul(denominator, field.Sub(f, samples[j].T, samples[m].T))
		}
		weights[j] = f.Inv(denominator)
	}

	return &Interpolator[F, V]{
		space:   space,
		samples: samples,
		weights: weights,
	}, nil
}

func (*Interpolator[F, V]) Kind() interpolation.Kind {
	return interpolation.KindLagrange
}

func (i *Interpolator[F, V]) Samples() []interpolation.Sample[F, V] {
	return interpolation.Clone(i.samples)
}

func (i *Interpolator[F, V]) Evaluate(t F) V {
	f := i.space.Scalars()
	result := i.space.Zero()
	for j, s := range i.samples {
		basis := i.weights[j]
		for m := range i.samples {
			if m == j {
				continue
			}
			basis = f.Mul(basis, field.Sub(f, t, i.samples[m].T))
		}
		result = i.space.Add(result, i.space.Scale(basis, s.Value))
	}
	return result
}
