// Package krogh implements Krogh's variant of Newton interpolation: a
// divided-difference table that also accepts repeated parameters, which
// turns the problem into Hermite interpolation.
//
// A parameter repeated r times in a row carries the value and then the
// first r-1 derivatives at that parameter, in that order:
//
//	{T: 1, Value: f(1)}, {T: 1, Value: f'(1)}, {T: 1, Value: f''(1)}
//
// Repeats must be adjacent. Building the table is O(n²); each evaluation is
// a Horner pass over the Newton form, O(n).
package krogh

import (
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
)

type Interpolator[F, V any] struct {
	space   field.VectorSpace[F, V]
	samples []interpolation.Sample[F, V]

	// coefficients of the Newton form:
	// p(t) = c[0] + c[1](t-t_0) + c[2](t-t_0)(t-t_1) + ...
	coefficients []V
}

var _ interpolation.Interpolator[float64, float64] = (*Interpolator[float64, float64])(nil)

func New[F, V any](
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) (*Interpolator[F, V], error) {
	f := space.Scalars()
	if err := validate(f, samples); err != nil {
		return nil, err
	}

	samples = interpolation.Clone(samples)
	return &Interpolator[F, V]{
		space:        space,
		samples:      samples,
		coefficients: dividedDifferences(space, samples),
	}, nil
}

// validate allows repeated parameters only as contiguous runs.
func validate[F, V any](f field.Field[F], samples []interpolation.Sample[F, V]) error {
	if err := interpolation.ValidateCount(interpolation.KindKrogh, len(samples)); err != nil {
		return err
	}

	var mErr *multierror.Error
	runStart := 0
	for k := 1; k < len(samples); k++ {
		if f.Near(samples[k].T, samples[runStart].T) {
			continue
		}
		runStart = k
		for prev := 0; prev < k; prev++ {
			if f.Near(samples[prev].T, samples[k].T) {
				mErr = multierror.Append(mErr, interpolation.ErrDuplicateParameter{First: prev, Second: k})
				break
			}
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return interpolation.NewErrDegenerateInput(interpolation.KindKrogh, "repeated parameters must be adjacent", err)
	}
	return nil
}

func dividedDifferences[F, V any](
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) []V {
	f := space.Scalars()
	n := len(samples)
	c := make([]V, n)
	c[0] = samples[0].Value

	// vk[i] holds f[t_i..t_k] while processing row k; rows of a repeated
	// run reuse the previous row's entries.
	vk := make([]V, n)
	for k := 1; k < n; k++ {
		s := 0
		for s <= k && f.Near(samples[k-s].T, samples[k].T) {
			s++
		}
		s--

		vk[0] = space.Scale(f.Inv(factorial(f, s)), samples[k].Value)
		for i := 0; i < k-s; i++ {
			inv := f.Inv(field.Sub(f, samples[i].T, samples[k].T))
			if s == 0 {
				vk[i+1] = space.Scale(inv, space.Add(c[i], space.Neg(vk[i])))
			} else {
				vk[i+1] = space.Scale(inv, space.Add(vk[i+1], space.Neg(vk[i])))
			}
		}
		c[k] = vk[k-s]
	}
	return c
}

func factorial[F any](f field.Field[F], n int) F {
	result := f.One()
	for k := 2; k <= n; k++ {
		result = f.Mul(result, field.FromInt(f, k))
	}
	return result
}

func (*Interpolator[F, V]) Kind() interpolation.Kind {
	return interpolation.KindKrogh
}

func (i *Interpolator[F, V]) Samples() []interpolation.Sample[F, V] {
	return interpolation.Clone(i.samples)
}

func (i *Interpolator[F, V]) Evaluate(t F) V {
	f := i.space.Scalars()
	n := len(i.coefficients)
	p := i.coefficients[n-1]
	for k := n - 2; k >= 0; k-- {
		p = i.space.Add(i.coefficients[k], i.space.Scale(field.Sub(f, t, i.samples[k].T), p))
	}
	return p
}

// Derivative returns the first derivative of the interpolating polynomial
// at t.
func (i *Interpolator[F, V]) Derivative(t F) V {
	f := i.space.Scalars()
	n := len(i.coefficients)
	p := i.coefficients[n-1]
	d := i.space.Zero()
	for k := n - 2; k >= 0; k-- {
		dt := field.Sub(f, t, i.samples[k].T)
		d = i.space.Add(p, i.space.Scale(dt, d))
		p = i.space.Add(i.coefficients[k], i.space.Scale(dt, p))
	}
	return d
}
