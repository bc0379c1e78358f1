// Package ebitenrender is a gl.Renderer drawing every buffer as a stroked
// line strip onto an ebiten image.
//
// Uploads are mirrored on the CPU side; Draw is expected to be called from
// ebiten's draw loop, while uploads may come from the update loop.
package ebitenrender

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/xaionaro-go/curve/pkg/gl"
)

const (
	DefaultStrokeWidth = 2

	// maxStripPoints keeps the stroke triangulation within uint16 indices.
	maxStripPoints = 4096
)

// Bounds is an axis-aligned rectangle in curve coordinates.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Bounds) IsEmpty() bool {
	return !(b.MaxX >= b.MinX && b.MaxY >= b.MinY)
}

func (b Bounds) union(x, y float64) Bounds {
	if b.IsEmpty() {
		return Bounds{MinX: x, MinY: y, MaxX: x, MaxY: y}
	}
	return Bounds{
		MinX: math.Min(b.MinX, x),
		MinY: math.Min(b.MinY, y),
		MaxX: math.Max(b.MaxX, x),
		MaxY: math.Max(b.MaxY, y),
	}
}

type mirror struct {
	layout   gl.Layout
	vertices [][]float64
	color    color.Color
}

type Renderer struct {
	locker  sync.Mutex
	buffers map[gl.BufferID]*mirror
	order   []gl.BufferID

	StrokeWidth float32
	Palette     []color.Color

	// Viewport is the area mapped onto the screen; an empty one means
	// fitting all the buffers.
	Viewport Bounds

	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

var _ gl.Renderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{
		buffers:     map[gl.BufferID]*mirror{},
		StrokeWidth: DefaultStrokeWidth,
		Palette: []color.Color{
			color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff},
			color.RGBA{R: 0xff, G: 0xb7, B: 0x4d, A: 0xff},
			color.RGBA{R: 0x81, G: 0xc7, B: 0x84, A: 0xff},
			color.RGBA{R: 0xe5, G: 0x73, B: 0x73, A: 0xff},
		},
		Viewport: Bounds{MinX: 1, MaxX: 0},
	}
}

func (r *Renderer) Upload(ctx context.Context, upload gl.Upload) (_err error) {
	logger.Tracef(ctx, "Upload[%s]", upload.Buffer)
	defer func() { logger.Tracef(ctx, "/Upload[%s]: %v", upload.Buffer, _err) }()

	vertices, err := upload.Vertices()
	if err != nil {
		return fmt.Errorf("unable to decode the upload: %w", err)
	}
	if upload.Offset < 0 || upload.Offset+upload.VertexCount > upload.TotalVertices {
		return fmt.Errorf("range [%d, %d) is out of the buffer of %d vertices", upload.Offset, upload.Offset+upload.VertexCount, upload.TotalVertices)
	}

	r.locker.Lock()
	defer r.locker.Unlock()
	m, ok := r.buffers[upload.Buffer]
	if !ok {
		if !upload.IsFull() {
			return fmt.Errorf("a partial upload to unknown %s", upload.Buffer)
		}
		m = &mirror{color: color.White}
		if len(r.Palette) > 0 {
			m.color = r.Palette[len(r.order)%len(r.Palette)]
		}
		r.buffers[upload.Buffer] = m
		r.order = append(r.order, upload.Buffer)
	}
	if !upload.IsFull() && upload.Layout.Components != m.layout.Components {
		return fmt.Errorf("a partial upload of %d-component vertices to %s holding %d-component vertices", upload.Layout.Components, upload.Buffer, m.layout.Components)
	}
	m.layout = upload.Layout
	switch {
	case len(m.vertices) < upload.TotalVertices:
		m.vertices = append(m.vertices, make([][]float64, upload.TotalVertices-len(m.vertices))...)
	case len(m.vertices) > upload.TotalVertices:
		m.vertices = m.vertices[:upload.TotalVertices]
	}
	copy(m.vertices[upload.Offset:], vertices)
	return nil
}

func (r *Renderer) Release(ctx context.Context, buffer gl.BufferID) error {
	logger.Debugf(ctx, "Release[%s]", buffer)

	r.locker.Lock()
	defer r.locker.Unlock()
	if _, ok := r.buffers[buffer]; !ok {
		return fmt.Errorf("unknown %s", buffer)
	}
	delete(r.buffers, buffer)
	r.order = slices.DeleteFunc(r.order, func(id gl.BufferID) bool { return id == buffer })
	return nil
}

// Vertices returns a copy of the mirrored vertices of the buffer.
func (r *Renderer) Vertices(buffer gl.BufferID) ([][]float64, bool) {
	r.locker.Lock()
	defer r.locker.Unlock()
	m, ok := r.buffers[buffer]
	if !ok {
		return nil, false
	}
	result := make([][]float64, len(m.vertices))
	for idx, v := range m.vertices {
		result[idx] = slices.Clone(v)
	}
	return result, true
}

func (r *Renderer) BufferCount() int {
	r.locker.Lock()
	defer r.locker.Unlock()
	return len(r.buffers)
}

// Bounds returns the bounding box of all the mirrored points.
func (r *Renderer) Bounds() Bounds {
	r.locker.Lock()
	defer r.locker.Unlock()
	return r.boundsLocked()
}

func (r *Renderer) boundsLocked() Bounds {
	b := Bounds{MinX: 1, MaxX: 0}
	for _, id := range r.order {
		for idx, v := range r.buffers[id].vertices {
			if v == nil {
				continue
			}
			x, y := point(idx, v)
			b = b.union(x, y)
		}
	}
	return b
}

// point projects a vertex onto the plane: 1D vertices are plotted against
// their index, others by their first two components.
func point(idx int, v []float64) (float64, float64) {
	if len(v) == 1 {
		return float64(idx), v[0]
	}
	return v[0], v[1]
}

// Draw strokes every buffer onto dst.
func (r *Renderer) Draw(dst *ebiten.Image) {
	if r.whiteSubImage == nil {
		white := ebiten.NewImage(3, 3)
		white.Fill(color.White)
		r.whiteSubImage = white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r.locker.Lock()
	defer r.locker.Unlock()

	view := r.Viewport
	if view.IsEmpty() {
		view = r.boundsLocked()
	}
	if view.IsEmpty() {
		return
	}
	size := dst.Bounds().Size()
	transform := newTransform(view, float64(size.X), float64(size.Y))

	for _, id := range r.order {
		m := r.buffers[id]
		for start := 0; start < len(m.vertices)-1; start += maxStripPoints - 1 {
			end := min(start+maxStripPoints, len(m.vertices))
			r.strokeStrip(dst, transform, m, start, end)
		}
	}
}

func (r *Renderer) strokeStrip(
	dst *ebiten.Image,
	transform transform,
	m *mirror,
	start, end int,
) {
	var path vector.Path
	moved := false
	for idx := start; idx < end; idx++ {
		if m.vertices[idx] == nil {
			continue
		}
		x, y := transform.apply(point(idx, m.vertices[idx]))
		if !moved {
			path.MoveTo(x, y)
			moved = true
			continue
		}
		path.LineTo(x, y)
	}

	r.vertices, r.indices = path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &vector.StrokeOptions{
		Width:    r.StrokeWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	cr, cg, cb, ca := m.color.RGBA()
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = float32(cr) / 0xffff
		r.vertices[i].ColorG = float32(cg) / 0xffff
		r.vertices[i].ColorB = float32(cb) / 0xffff
		r.vertices[i].ColorA = float32(ca) / 0xffff
	}
	dst.DrawTriangles(r.vertices, r.indices, r.whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// transform maps curve coordinates onto the screen, y up, keeping a margin.
type transform struct {
	scaleX, scaleY float64
	offX, offY     float64
}

const marginRatio = 0.05

func newTransform(view Bounds, width, height float64) transform {
	w := view.MaxX - view.MinX
	h := view.MaxY - view.MinY
	if w == 0 {
		w = 1
	}
	if h == 0 {
		h = 1
	}
	usableW := width * (1 - 2*marginRatio)
	usableH := height * (1 - 2*marginRatio)
	t := transform{
		scaleX: usableW / w,
		scaleY: -usableH / h,
	}
	t.offX = width*marginRatio - view.MinX*t.scaleX
	t.offY = height*(1-marginRatio) - view.MinY*t.scaleY
	return t
}

func (t transform) apply(x, y float64) (float32, float32) {
	return float32(x*t.scaleX + t.offX), float32(y*t.scaleY + t.offY)
}
