package gl

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
)

// ElementType is the numeric type of one vertex component in the uploaded
// buffer. Data is always little-endian, as WebGL typed arrays are on every
// platform it runs on.
type ElementType uint

const (
	ElementTypeUndefined = ElementType(iota)
	ElementTypeFloat32
	ElementTypeFloat64
	EndOfElementType
)

func (t ElementType) String() string {
	switch t {
	case ElementTypeUndefined:
		return "undefined"
	case ElementTypeFloat32:
		return "float32"
	case ElementTypeFloat64:
		return "float64"
	default:
		return fmt.Sprintf("unknown_element_type_%d", uint(t))
	}
}

// Size is the size of one component in bytes.
func (t ElementType) Size() int {
	switch t {
	case ElementTypeFloat32:
		return 4
	case ElementTypeFloat64:
		return 8
	default:
		return 0
	}
}

func (t ElementType) put(p []byte, v float64) {
	switch t {
	case ElementTypeFloat32:
		binary.LittleEndian.PutUint32(p, math.Float32bits(float32(v)))
	case ElementTypeFloat64:
		binary.LittleEndian.PutUint64(p, math.Float64bits(v))
	default:
		panic(fmt.Sprintf("unknown element type: %v", t))
	}
}

func (t ElementType) get(p []byte) float64 {
	switch t {
	case ElementTypeFloat32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(p)))
	case ElementTypeFloat64:
		return math.Float64frombits(binary.LittleEndian.Uint64(p))
	default:
		panic(fmt.Sprintf("unknown element type: %v", t))
	}
}

// Usage is the buffer usage hint passed to the GPU collaborator.
type Usage uint

const (
	UsageUndefined = Usage(iota)
	UsageStatic
	UsageDynamic
	UsageStream
	EndOfUsage
)

var _ pflag.Value = (*Usage)(nil)

func (u Usage) String() string {
	switch u {
	case UsageUndefined:
		return "undefined"
	case UsageStatic:
		return "static"
	case UsageDynamic:
		return "dynamic"
	case UsageStream:
		return "stream"
	default:
		return fmt.Sprintf("unknown_usage_%d", uint(u))
	}
}

// GLName is the WebGL enum name of the hint, e.g. "STATIC_DRAW".
func (u Usage) GLName() string {
	return strings.ToUpper(u.String()) + "_DRAW"
}

func (u *Usage) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for candidate := UsageUndefined + 1; candidate < EndOfUsage; candidate++ {
		if candidate.String() == s {
			*u = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown usage '%s'", s)
}

func (u *Usage) Type() string {
	return "usage"
}

// Layout describes how vertices are laid out in a buffer.
type Layout struct {
	// Components per vertex, 1 to 4.
	Components int

	// Type of each component; zero means ElementTypeFloat32.
	Type ElementType

	// Stride is the distance in bytes between the starts of two
	// consecutive vertices. Zero means tightly packed; a larger stride
	// leaves zeroed padding after each vertex.
	Stride int

	// Usage hint; zero means UsageDynamic.
	Usage Usage
}

// Normalized returns the layout with zero fields replaced by their defaults.
func (l Layout) Normalized() Layout {
	if l.Type == ElementTypeUndefined {
		l.Type = ElementTypeFloat32
	}
	if l.Usage == UsageUndefined {
		l.Usage = UsageDynamic
	}
	l.Stride = l.ByteStride()
	return l
}

// ByteStride is the effective distance in bytes between two vertices.
func (l Layout) ByteStride() int {
	if l.Stride == 0 {
		return l.VertexSize()
	}
	return l.Stride
}

// VertexSize is the number of meaningful bytes of one vertex.
func (l Layout) VertexSize() int {
	t := l.Type
	if t == ElementTypeUndefined {
		t = ElementTypeFloat32
	}
	return l.Components * t.Size()
}

func (l Layout) Validate() error {
	var mErr *multierror.Error
	if l.Components < 1 || l.Components > 4 {
		mErr = multierror.Append(mErr, fmt.Errorf("components must be within [1, 4]: got %d", l.Components))
	}
	if l.Type >= EndOfElementType {
		mErr = multierror.Append(mErr, fmt.Errorf("unknown element type %v", l.Type))
	}
	if l.Usage >= EndOfUsage {
		mErr = multierror.Append(mErr, fmt.Errorf("unknown usage %v", l.Usage))
	}
	if l.Stride != 0 && l.Stride < l.VertexSize() {
		mErr = multierror.Append(mErr, fmt.Errorf("stride %d is less than the vertex size %d", l.Stride, l.VertexSize()))
	}
	return mErr.ErrorOrNil()
}
