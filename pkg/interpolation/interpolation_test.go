package interpolation

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/curve/pkg/field"
)

func TestKindFlag(t *testing.T) {
	for _, kind := range Kinds() {
		var parsed Kind
		require.NoError(t, parsed.Set(kind.String()))
		assert.Equal(t, kind, parsed)
	}

	var k Kind
	require.NoError(t, k.Set(" Aitken "))
	assert.Equal(t, KindAitken, k)
	assert.Error(t, k.Set("spline"))
	assert.Error(t, k.Set("undefined"))
	assert.Equal(t, KindAitken, k)

	assert.Len(t, Kinds(), int(EndOfKind)-1)
	assert.True(t, KindKrogh.Polynomial())
	assert.False(t, KindLinear.Polynomial())
	assert.False(t, KindFourier.Polynomial())
	assert.Equal(t, "unknown_kind_100", Kind(100).String())
}

func TestValidateDistinct(t *testing.T) {
	f := field.Float64{Epsilon: 1e-9}
	samples := []Sample[float64, float64]{
		{T: 0, Value: 1},
		{T: 1, Value: 2},
		{T: 1 + 1e-12, Value: 3},
		{T: 0, Value: 4},
	}

	err := ValidateDistinct(KindLagrange, f, samples)
	var degenerate *ErrDegenerateInput
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, KindLagrange, degenerate.Kind)

	var mErr *multierror.Error
	require.ErrorAs(t, errors.Unwrap(err), &mErr)
	assert.Equal(t, []error{
		ErrDuplicateParameter{First: 0, Second: 3},
		ErrDuplicateParameter{First: 1, Second: 2},
	}, mErr.Errors)

	require.NoError(t, ValidateDistinct(KindLagrange, f, samples[:2]))

	err = ValidateDistinct(KindNeville, f, samples[:1])
	require.ErrorAs(t, err, &degenerate)
	assert.Nil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "not enough samples: 1 < 2")
}

func TestSpan(t *testing.T) {
	lo, hi := Span(field.Float64{}, []Sample[float64, string]{
		{T: 3, Value: "c"},
		{T: -1, Value: "a"},
		{T: 7, Value: "d"},
		{T: 0, Value: "b"},
	})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)
}

func TestClone(t *testing.T) {
	in := []Sample[float64, float64]{{T: 0, Value: 1}}
	out := Clone(in)
	out[0].Value = 2
	assert.Equal(t, 1.0, in[0].Value)
}
