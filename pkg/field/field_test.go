package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Axioms(t *testing.T) {
	f := Float64{}
	values := []float64{0, 1, -2.5, 1e-3, 3.14159, 1e6, -7}

	for _, a := range values {
		assert.Equal(t, a, f.Mul(f.One(), a), "one is the multiplicative identity")
		assert.Equal(t, a, f.Add(f.Zero(), a), "zero is the additive identity")
		assert.True(t, f.Near(f.Zero(), f.Add(a, f.Neg(a))))
		if a != 0 {
			assert.True(t, f.Near(f.One(), f.Mul(a, f.Inv(a))))
		}
		for _, b := range values {
			assert.True(t, f.Near(f.Add(a, b), f.Add(b, a)), "commutativity of %v+%v", a, b)
			for _, c := range values {
				lhs := f.Add(f.Add(a, b), c)
				rhs := f.Add(a, f.Add(b, c))
				assert.InDelta(t, lhs, rhs, 1e-9, "associativity of %v+%v+%v", a, b, c)
			}
		}
	}
}

func TestFloat64Near(t *testing.T) {
	assert.True(t, Float64{}.Near(1, 1+DefaultEpsilon/2))
	assert.False(t, Float64{}.Near(1, 1+DefaultEpsilon*2))
	assert.True(t, Float64{Epsilon: 0.1}.Near(1, 1.05))
	assert.False(t, Float64{}.Equal(1, 1+DefaultEpsilon/2))
}

func TestFloat32(t *testing.T) {
	f := Float32{}
	assert.Equal(t, float32(6), f.Mul(2, 3))
	assert.Equal(t, float32(0.5), f.Inv(2))
	assert.Equal(t, -1, f.Compare(1, 2))
	assert.True(t, f.Near(1, 1+1e-7))
}

func TestRat(t *testing.T) {
	f := Rat{}
	a := big.NewRat(1, 3)
	b := big.NewRat(2, 3)

	sum := f.Add(a, b)
	require.True(t, f.Equal(f.One(), sum))
	assert.Equal(t, "1/3", a.RatString(), "arguments are not mutated")
	assert.True(t, f.Equal(big.NewRat(3, 1), f.Inv(a)))
	assert.True(t, f.Equal(big.NewRat(-1, 3), f.Neg(a)))
	assert.Equal(t, 1, f.Compare(b, a))
	assert.True(t, f.Equal(big.NewRat(-1, 3), Sub[*big.Rat](f, a, b)))
	assert.True(t, f.Equal(big.NewRat(1, 2), Div[*big.Rat](f, a, b)))
}

func TestFromInt(t *testing.T) {
	assert.Equal(t, 5.0, FromInt[float64](Float64{}, 5))
	assert.Equal(t, -3.0, FromInt[float64](Float64{}, -3))
	assert.True(t, Rat{}.Equal(big.NewRat(4, 1), FromInt[*big.Rat](Rat{}, 4)))
}

func TestScalarsSpace(t *testing.T) {
	s := Scalars[float64](Float64{})
	assert.Equal(t, 6.0, s.Scale(2, 3))
	assert.Equal(t, 3.0, s.Scale(1, 3))
	assert.Equal(t, 0.0, s.Scale(0, 3))
	assert.True(t, s.Equal(5, s.Add(2, 3)))
	assert.Equal(t, -2.0, s.Neg(2))
}

func TestTupleSpace(t *testing.T) {
	s := TupleSpace[float64]{Field: Float64{}, Dim: 3}
	v := s.Of(1, -2, 3.5)

	t.Run("scale_identities", func(t *testing.T) {
		assert.True(t, s.Equal(v, s.Scale(1, v)))
		assert.True(t, s.Equal(s.Zero(), s.Scale(0, v)))
	})

	t.Run("add_neg", func(t *testing.T) {
		assert.True(t, s.Equal(s.Zero(), s.Add(v, s.Neg(v))))
		assert.Equal(t, Tuple[float64]{2, -4, 7}, s.Add(v, v))
	})

	t.Run("of_copies", func(t *testing.T) {
		components := []float64{1, 2, 3}
		tuple := s.Of(components...)
		components[0] = 42
		assert.Equal(t, 1.0, tuple[0])
	})

	t.Run("arity_mismatch_panics", func(t *testing.T) {
		assert.Panics(t, func() { s.Add(v, Tuple[float64]{1, 2}) })
	})

	t.Run("over_rationals", func(t *testing.T) {
		rs := TupleSpace[*big.Rat]{Field: Rat{}, Dim: 2}
		r := rs.Of(big.NewRat(1, 2), big.NewRat(-3, 4))
		assert.True(t, rs.Equal(r, rs.Scale(big.NewRat(1, 1), r)))
		assert.True(t, rs.Equal(rs.Zero(), rs.Scale(new(big.Rat), r)))
	})
}
