package fourier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/vec"
)

func circleSamples(n int) []interpolation.Sample[float64, vec.Vec2] {
	samples := make([]interpolation.Sample[float64, vec.Vec2], n)
	for k := range samples {
		t := float64(k) / float64(n)
		samples[k] = interpolation.Sample[float64, vec.Vec2]{
			T:     t,
			Value: vec.V2(math.Cos(2*math.Pi*t), math.Sin(2*math.Pi*t)),
		}
	}
	return samples
}

func TestCircleIsReproducedExactly(t *testing.T) {
	for _, n := range []int{3, 4, 7, 8, 16} {
		it, err := New(vec.Space[vec.Vec2]{}, circleSamples(n))
		require.NoError(t, err)
		assert.InDelta(t, 1, it.Period(), 1e-12)

		for x := -1.0; x <= 2; x += 0.01 {
			want := vec.V2(math.Cos(2*math.Pi*x), math.Sin(2*math.Pi*x))
			assert.InDelta(t, 0, vec.Distance(want, it.Evaluate(x)), 1e-9, "n=%d x=%v", n, x)
		}
	}
}

func TestNodesAndPeriodicity(t *testing.T) {
	samples := []interpolation.Sample[float64, vec.Scalar]{
		{T: 10, Value: vec.Scalar{3}},
		{T: 12, Value: vec.Scalar{-1}},
		{T: 14, Value: vec.Scalar{0.5}},
		{T: 16, Value: vec.Scalar{2}},
		{T: 18, Value: vec.Scalar{2}},
		{T: 20, Value: vec.Scalar{-4}},
	}
	it, err := New(vec.Space[vec.Scalar]{}, samples)
	require.NoError(t, err)
	assert.Equal(t, 12.0, it.Period())

	for _, s := range samples {
		assert.InDelta(t, s.Value[0], it.Evaluate(s.T)[0], 1e-9, "t=%v", s.T)
	}
	for x := 10.0; x < 22; x += 0.7 {
		assert.InDelta(t, it.Evaluate(x)[0], it.Evaluate(x+it.Period())[0], 1e-9)
		assert.InDelta(t, it.Evaluate(x)[0], it.Evaluate(x-2*it.Period())[0], 1e-9)
	}
}

func TestUnsortedInput(t *testing.T) {
	samples := circleSamples(5)
	samples[0], samples[3] = samples[3], samples[0]
	it, err := New(vec.Space[vec.Vec2]{}, samples)
	require.NoError(t, err)
	assert.Equal(t, 0.0, it.Samples()[0].T)
}

func TestNonUniform(t *testing.T) {
	samples := circleSamples(4)
	samples[2].T += 0.01
	_, err := New(vec.Space[vec.Vec2]{}, samples)
	var degenerate *interpolation.ErrDegenerateInput
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, interpolation.KindFourier, degenerate.Kind)
}

func BenchmarkEvaluate(b *testing.B) {
	it, err := New(vec.Space[vec.Vec2]{}, circleSamples(64))
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = it.Evaluate(float64(i%1000) / 1000)
	}
}
