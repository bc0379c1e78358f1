package field

import (
	"cmp"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// DefaultEpsilon is the absolute tolerance used by Near when a
	// floating-point field has no explicit Epsilon.
	DefaultEpsilon = 1e-12

	// DefaultEpsilon32 is DefaultEpsilon for float32.
	DefaultEpsilon32 = 1e-6
)

// Float64 is the field of IEEE-754 double precision reals.
type Float64 struct {
	// Epsilon is the absolute tolerance of Near. Zero means DefaultEpsilon.
	Epsilon float64
}

var _ Ordered[float64] = Float64{}

func (Float64) Zero() float64            { return 0 }
func (Float64) One() float64             { return 1 }
func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Neg(a float64) float64    { return -a }
func (Float64) Inv(a float64) float64    { return 1 / a }
func (Float64) Equal(a, b float64) bool  { return a == b }
func (Float64) Compare(a, b float64) int { return cmp.Compare(a, b) }

func (f Float64) Near(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, f.epsilon())
}

func (f Float64) epsilon() float64 {
	if f.Epsilon == 0 {
		return DefaultEpsilon
	}
	return f.Epsilon
}

// Float32 is the field of IEEE-754 single precision reals.
type Float32 struct {
	// Epsilon is the absolute tolerance of Near. Zero means DefaultEpsilon32.
	Epsilon float32
}

var _ Ordered[float32] = Float32{}

func (Float32) Zero() float32            { return 0 }
func (Float32) One() float32             { return 1 }
func (Float32) Add(a, b float32) float32 { return a + b }
func (Float32) Mul(a, b float32) float32 { return a * b }
func (Float32) Neg(a float32) float32    { return -a }
func (Float32) Inv(a float32) float32    { return 1 / a }
func (Float32) Equal(a, b float32) bool  { return a == b }
func (Float32) Compare(a, b float32) int { return cmp.Compare(a, b) }

func (f Float32) Near(a, b float32) bool {
	eps := f.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon32
	}
	return scalar.EqualWithinAbs(float64(a), float64(b), float64(eps))
}
