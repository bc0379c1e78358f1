// Package vec provides fixed arity float64 vectors (Scalar, Vec2, Vec3, Vec4)
// and their vector space, the value types curves are built from and GL
// buffers are filled with.
package vec

import (
	"gonum.org/v1/gonum/floats"
)

// Vector is anything that can be flattened into float64 components.
type Vector interface {
	Arity() int
	AppendComponents(dst []float64) []float64
}

// Element is the constraint satisfied by the concrete vector types.
type Element[V any] interface {
	comparable
	Vector
	Add(V) V
	Sub(V) V
	Neg() V
	Scale(float64) V

	// WithComponents returns a vector built from the first Arity() values
	// of c. The receiver is only used for its type.
	WithComponents(c []float64) V
}

type (
	Scalar [1]float64
	Vec2   [2]float64
	Vec3   [3]float64
	Vec4   [4]float64
)

var (
	_ Vector = Scalar{}
	_ Vector = Vec2{}
	_ Vector = Vec3{}
	_ Vector = Vec4{}
)

func V2(x, y float64) Vec2       { return Vec2{x, y} }
func V3(x, y, z float64) Vec3    { return Vec3{x, y, z} }
func V4(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }
func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }
func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

func (Scalar) Arity() int { return 1 }
func (Vec2) Arity() int   { return 2 }
func (Vec3) Arity() int   { return 3 }
func (Vec4) Arity() int   { return 4 }

func (v Scalar) AppendComponents(dst []float64) []float64 { return append(dst, v[:]...) }
func (v Vec2) AppendComponents(dst []float64) []float64   { return append(dst, v[:]...) }
func (v Vec3) AppendComponents(dst []float64) []float64   { return append(dst, v[:]...) }
func (v Vec4) AppendComponents(dst []float64) []float64   { return append(dst, v[:]...) }

func (Scalar) WithComponents(c []float64) (v Scalar) { copy(v[:], c); return }
func (Vec2) WithComponents(c []float64) (v Vec2)     { copy(v[:], c); return }
func (Vec3) WithComponents(c []float64) (v Vec3)     { copy(v[:], c); return }
func (Vec4) WithComponents(c []float64) (v Vec4)     { copy(v[:], c); return }

func (v Scalar) Add(o Scalar) Scalar { return Scalar{v[0] + o[0]} }
func (v Scalar) Sub(o Scalar) Scalar { return Scalar{v[0] - o[0]} }
func (v Scalar) Neg() Scalar         { return Scalar{-v[0]} }
func (v Scalar) Scale(s float64) Scalar {
	return Scalar{v[0] * s}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v[0] + o[0], v[1] + o[1]} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v[0] - o[0], v[1] - o[1]} }
func (v Vec2) Neg() Vec2       { return Vec2{-v[0], -v[1]} }
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v[0] * s, v[1] * s}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3) Neg() Vec3       { return Vec3{-v[0], -v[1], -v[2]} }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4) Neg() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Cross is the right-handed cross product.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func Dot[V Element[V]](a, b V) float64 {
	return floats.Dot(components(a), components(b))
}

// Len is the Euclidean norm.
func Len[V Element[V]](v V) float64 {
	return floats.Norm(components(v), 2)
}

func Distance[V Element[V]](a, b V) float64 {
	return floats.Distance(components(a), components(b), 2)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func Normalize[V Element[V]](v V) V {
	l := Len(v)
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func components[V Vector](v V) []float64 {
	var buf [4]float64
	return v.AppendComponents(buf[:0])
}
