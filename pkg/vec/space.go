package vec

import (
	"github.com/xaionaro-go/curve/pkg/field"
)

// Space is the vector space of V over the float64 field.
//
// It also exposes component (de)composition, which strategies that work
// component by component (e.g. Fourier) depend on.
type Space[V Element[V]] struct {
	Field field.Float64
}

var (
	_ field.VectorSpace[float64, Vec2] = Space[Vec2]{}
	_ Decomposer[Vec3]                 = Space[Vec3]{}
)

// Decomposer splits vectors into float64 components and back.
type Decomposer[V any] interface {
	Arity() int
	Components(v V, dst []float64) []float64
	Compose(c []float64) V
}

func (s Space[V]) Scalars() field.Field[float64] { return s.Field }
func (Space[V]) Zero() (zero V)                  { return }
func (Space[V]) Add(a, b V) V                    { return a.Add(b) }
func (Space[V]) Neg(v V) V                       { return v.Neg() }
func (Space[V]) Scale(k float64, v V) V          { return v.Scale(k) }
func (Space[V]) Equal(a, b V) bool               { return a == b }

func (Space[V]) Arity() int {
	var zero V
	return zero.Arity()
}

func (Space[V]) Components(v V, dst []float64) []float64 {
	return v.AppendComponents(dst)
}

func (Space[V]) Compose(c []float64) V {
	var zero V
	return zero.WithComponents(c)
}
