// Package fourier implements trigonometric interpolation of uniformly
// spaced samples.
//
// The samples are treated as one period of a periodic signal. Each vector
// component is transformed with a real-input FFT and the curve is the
// resulting band-limited trigonometric polynomial, so it passes through
// every sample and continues periodically outside the sampled span.
package fourier

import (
	"fmt"
	"math"
	"sort"

	"github.com/mjibson/go-dsp/fft"
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/vec"
)

const (
	// SpacingTolerance is the allowed deviation of a parameter from the
	// uniform grid, relative to the grid step.
	SpacingTolerance = 1e-9

	// PairNormalization doubles the contribution of a non-Nyquist positive
	// frequency, which stands for itself and its negative mirror.
	PairNormalization = 2.0
)

// Space is what Fourier interpolation needs from a vector space: float64
// scalars and access to the components of each vector.
type Space[V any] interface {
	field.VectorSpace[float64, V]
	vec.Decomposer[V]
}

type Interpolator[V any] struct {
	space   Space[V]
	samples []interpolation.Sample[float64, V]
	origin  float64
	period  float64

	// spectrum[c] is the DFT of component c.
	spectrum [][]complex128
}

var _ interpolation.Interpolator[float64, vec.Vec2] = (*Interpolator[vec.Vec2])(nil)

func New[V any](
	space Space[V],
	samples []interpolation.Sample[float64, V],
) (*Interpolator[V], error) {
	if err := interpolation.ValidateDistinct(interpolation.KindFourier, space.Scalars(), samples); err != nil {
		return nil, err
	}

	samples = interpolation.Clone(samples)
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].T < samples[j].T
	})

	n := len(samples)
	origin := samples[0].T
	step := (samples[n-1].T - origin) / float64(n-1)
	for k, s := range samples {
		expected := origin + float64(k)*step
		if math.Abs(s.T-expected) > SpacingTolerance*step {
			return nil, interpolation.NewErrDegenerateInput(
				interpolation.KindFourier,
				fmt.Sprintf("parameters are not uniformly spaced: sample #%d is at %v, expected %v", k, s.T, expected),
				nil,
			)
		}
	}

	arity := space.Arity()
	planes := make([][]float64, arity)
	for c := range planes {
		planes[c] = make([]float64, n)
	}
	var buf []float64
	for k, s := range samples {
		buf = space.Components(s.Value, buf[:0])
		for c := range planes {
			planes[c][k] = buf[c]
		}
	}

	spectrum := make([][]complex128, arity)
	for c, plane := range planes {
		spectrum[c] = fft.FFTReal(plane)
	}

	return &Interpolator[V]{
		space:    space,
		samples:  samples,
		origin:   origin,
		period:   step * float64(n),
		spectrum: spectrum,
	}, nil
}

func (*Interpolator[V]) Kind() interpolation.Kind {
	return interpolation.KindFourier
}

func (i *Interpolator[V]) Samples() []interpolation.Sample[float64, V] {
	return interpolation.Clone(i.samples)
}

// Period is the length of the parameter interval after which the curve
// repeats: n times the sample spacing.
func (i *Interpolator[V]) Period() float64 {
	return i.period
}

func (i *Interpolator[V]) Evaluate(t float64) V {
	n := len(i.samples)
	invN := 1.0 / float64(n)
	x := 2 * math.Pi * (t - i.origin) / i.period

	components := make([]float64, len(i.spectrum))
	for c, coeffs := range i.spectrum {
		// DC component
		sum := real(coeffs[0]) * invN
		for j := 1; 2*j <= n; j++ {
			sin, cos := math.Sincos(float64(j) * x)
			term := (real(coeffs[j])*cos - imag(coeffs[j])*sin) * invN
			if 2*j != n {
				term *= PairNormalization
			}
			sum += term
		}
		components[c] = sum
	}
	return i.space.Compose(components)
}
