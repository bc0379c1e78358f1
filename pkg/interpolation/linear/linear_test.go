package linear

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/vec"
	"gonum.org/v1/gonum/interp"
)

type sample = interpolation.Sample[float64, float64]

func square() []sample {
	return []sample{{T: 0, Value: 0}, {T: 1, Value: 1}, {T: 2, Value: 4}}
}

func TestLinear(t *testing.T) {
	it, err := New(field.Scalars[float64](field.Float64{}), square())
	require.NoError(t, err)

	t.Run("between_samples", func(t *testing.T) {
		assert.InDelta(t, 2.5, it.Evaluate(1.5), 1e-12)
		assert.InDelta(t, 0.5, it.Evaluate(0.5), 1e-12)
	})

	t.Run("exact_at_samples", func(t *testing.T) {
		for _, s := range square() {
			assert.Equal(t, s.Value, it.Evaluate(s.T))
		}
	})

	t.Run("extrapolation", func(t *testing.T) {
		assert.InDelta(t, -1, it.Evaluate(-1), 1e-12)
		assert.InDelta(t, 7, it.Evaluate(3), 1e-12)
	})
}

func TestLinearUnsortedInput(t *testing.T) {
	samples := []sample{{T: 2, Value: 4}, {T: 0, Value: 0}, {T: 1, Value: 1}}
	it, err := New(field.Scalars[float64](field.Float64{}), samples)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, it.Evaluate(1.5), 1e-12)

	samples[0].Value = 100
	assert.Equal(t, 4.0, it.Evaluate(2), "input slice is not aliased")
	assert.Equal(t, 0.0, it.Samples()[0].T, "samples are kept sorted")
}

func TestLinearMatchesGonum(t *testing.T) {
	xs := []float64{-3, -1, 0, 0.5, 2, 7}
	ys := []float64{2, -1, 0, 3, 3.5, -2}

	var reference interp.PiecewiseLinear
	require.NoError(t, reference.Fit(xs, ys))

	samples := make([]sample, len(xs))
	for i := range xs {
		samples[i] = sample{T: xs[i], Value: ys[i]}
	}
	it, err := New(field.Scalars[float64](field.Float64{}), samples)
	require.NoError(t, err)

	for x := -3.0; x <= 7; x += 0.125 {
		assert.InDelta(t, reference.Predict(x), it.Evaluate(x), 1e-9, "x=%v", x)
	}
}

func TestLinearVectors(t *testing.T) {
	samples := []interpolation.Sample[float64, vec.Vec3]{
		{T: 0, Value: vec.V3(0, 0, 0)},
		{T: 10, Value: vec.V3(10, -10, 1)},
	}
	it, err := New(vec.Space[vec.Vec3]{}, samples)
	require.NoError(t, err)

	got := it.Evaluate(2.5)
	assert.InDelta(t, 0, vec.Distance(vec.V3(2.5, -2.5, 0.25), got), 1e-12, spew.Sdump(got))
}

func TestLinearRationals(t *testing.T) {
	samples := []interpolation.Sample[*big.Rat, *big.Rat]{
		{T: big.NewRat(0, 1), Value: big.NewRat(0, 1)},
		{T: big.NewRat(3, 1), Value: big.NewRat(1, 1)},
	}
	it, err := New(field.Scalars[*big.Rat](field.Rat{}), samples)
	require.NoError(t, err)
	assert.Equal(t, "1/3", it.Evaluate(big.NewRat(1, 1)).RatString())
}

func TestLinearDegenerate(t *testing.T) {
	space := field.Scalars[float64](field.Float64{})

	t.Run("too_few", func(t *testing.T) {
		_, err := New(space, []sample{{T: 0, Value: 1}})
		var degenerate *interpolation.ErrDegenerateInput
		require.ErrorAs(t, err, &degenerate)
		assert.Equal(t, interpolation.KindLinear, degenerate.Kind)
	})

	t.Run("duplicates", func(t *testing.T) {
		_, err := New(space, []sample{{T: 0, Value: 1}, {T: 1, Value: 2}, {T: 1 + 1e-15, Value: 3}})
		var degenerate *interpolation.ErrDegenerateInput
		require.ErrorAs(t, err, &degenerate)

		var dup interpolation.ErrDuplicateParameter
		require.True(t, errors.As(err, &dup), err.Error())
		assert.Equal(t, interpolation.ErrDuplicateParameter{First: 1, Second: 2}, dup)
	})
}

func BenchmarkEvaluate(b *testing.B) {
	samples := make([]sample, 1024)
	for i := range samples {
		samples[i] = sample{T: float64(i), Value: math.Sin(float64(i))}
	}
	it, err := New(field.Scalars[float64](field.Float64{}), samples)
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = it.Evaluate(float64(i%1023) + 0.5)
	}
}
