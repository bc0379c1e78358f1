// Package field defines the algebraic abstractions every curve algorithm is
// written against: a scalar Field and a VectorSpace over it.
//
// Algorithms never touch concrete numeric types directly; they receive a Field
// (or a VectorSpace, which carries its Field) and do all arithmetic through it.
// This lets the same code run over float64, float32, exact rationals, and
// fixed or variable arity vectors.
package field

// Field is the set of operations of an algebraic field over T.
//
// Implementations are stateless value types and every method is a pure
// function: arguments are never mutated.
type Field[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Mul(a, b T) T
	Neg(a T) T

	// Inv returns the multiplicative inverse of a. The result for a zero
	// argument is implementation defined (±Inf for floats, panic for Rat).
	Inv(a T) T

	// Equal reports exact equality.
	Equal(a, b T) bool

	// Near reports equality within the field's tolerance.
	Near(a, b T) bool
}

// Ordered is a Field with a total order.
type Ordered[T any] interface {
	Field[T]

	// Compare returns -1, 0 or +1 like cmp.Compare.
	Compare(a, b T) int
}

func Sub[T any](f Field[T], a, b T) T {
	return f.Add(a, f.Neg(b))
}

func Div[T any](f Field[T], a, b T) T {
	return f.Mul(a, f.Inv(b))
}

// FromInt returns n·One computed with field operations only.
func FromInt[T any](f Field[T], n int) T {
	neg := n < 0
	if neg {
		n = -n
	}
	result := f.Zero()
	one := f.One()
	for i := 0; i < n; i++ {
		result = f.Add(result, one)
	}
	if neg {
		return f.Neg(result)
	}
	return result
}
