package field

import (
	"fmt"
)

// VectorSpace is a set of vectors V with component-wise addition and a
// scalar action by the elements of a Field over F.
type VectorSpace[F, V any] interface {
	Scalars() Field[F]
	Zero() V
	Add(a, b V) V
	Neg(v V) V
	Scale(s F, v V) V

	// Equal is exact component-wise equality.
	Equal(a, b V) bool
}

// Scalars returns f viewed as a one-dimensional vector space over itself.
func Scalars[F any](f Field[F]) VectorSpace[F, F] {
	return scalarSpace[F]{Field: f}
}

type scalarSpace[F any] struct {
	Field Field[F]
}

func (s scalarSpace[F]) Scalars() Field[F] { return s.Field }
func (s scalarSpace[F]) Zero() F           { return s.Field.Zero() }
func (s scalarSpace[F]) Add(a, b F) F      { return s.Field.Add(a, b) }
func (s scalarSpace[F]) Neg(v F) F         { return s.Field.Neg(v) }
func (s scalarSpace[F]) Scale(k F, v F) F  { return s.Field.Mul(k, v) }
func (s scalarSpace[F]) Equal(a, b F) bool { return s.Field.Equal(a, b) }

// Tuple is an ordered N-tuple of field elements.
type Tuple[F any] []F

// TupleSpace is the space of Dim-tuples over Field.
//
// Operations panic when given a tuple of the wrong arity: such input is a
// programming error, not a runtime condition.
type TupleSpace[F any] struct {
	Field Field[F]
	Dim   int
}

var _ VectorSpace[float64, Tuple[float64]] = TupleSpace[float64]{}

func (s TupleSpace[F]) Scalars() Field[F] { return s.Field }

func (s TupleSpace[F]) Zero() Tuple[F] {
	out := make(Tuple[F], s.Dim)
	for i := range out {
		out[i] = s.Field.Zero()
	}
	return out
}

// Of builds a tuple from its components, checking the arity.
func (s TupleSpace[F]) Of(components ...F) Tuple[F] {
	s.check(components)
	out := make(Tuple[F], len(components))
	copy(out, components)
	return out
}

func (s TupleSpace[F]) Add(a, b Tuple[F]) Tuple[F] {
	s.check(a)
	s.check(b)
	out := make(Tuple[F], s.Dim)
	for i := range out {
		out[i] = s.Field.Add(a[i], b[i])
	}
	return out
}

func (s TupleSpace[F]) Neg(v Tuple[F]) Tuple[F] {
	s.check(v)
	out := make(Tuple[F], s.Dim)
	for i := range out {
		out[i] = s.Field.Neg(v[i])
	}
	return out
}

func (s TupleSpace[F]) Scale(k F, v Tuple[F]) Tuple[F] {
	s.check(v)
	out := make(Tuple[F], s.Dim)
	for i := range out {
		out[i] = s.Field.Mul(k, v[i])
	}
	return out
}

func (s TupleSpace[F]) Equal(a, b Tuple[F]) bool {
	s.check(a)
	s.check(b)
	for i := range a {
		if !s.Field.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (s TupleSpace[F]) check(v Tuple[F]) {
	if len(v) != s.Dim {
		panic(fmt.Errorf("tuple arity mismatch: expected %d, got %d", s.Dim, len(v)))
	}
}
