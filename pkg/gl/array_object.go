// Package gl stages vertex data for a GPU buffer: vectors are encoded into a
// flat byte buffer per a Layout, and handed to a Renderer at Flush.
//
// Nothing in the package talks to a GPU directly, and nothing is
// synchronized: an ArrayObject is owned by one goroutine at a time.
package gl

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/curve/pkg/vec"
)

type ArrayObject struct {
	id       BufferID
	layout   Layout
	renderer Renderer

	data        []byte
	vertexCount int

	// pending range in vertices, valid if dirty
	dirty      bool
	dirtyFrom  int
	dirtyTo    int
	sizeChange bool

	destroyed bool
}

// NewArrayObject returns an empty array object with the given layout. The
// layout is fixed for the lifetime of the object.
func NewArrayObject(
	layout Layout,
	renderer Renderer,
) (*ArrayObject, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	if renderer == nil {
		return nil, fmt.Errorf("renderer is nil")
	}
	return &ArrayObject{
		id:       newBufferID(),
		layout:   layout.Normalized(),
		renderer: renderer,
	}, nil
}

func (a *ArrayObject) ID() BufferID {
	return a.id
}

func (a *ArrayObject) Layout() Layout {
	return a.layout
}

func (a *ArrayObject) VertexCount() int {
	return a.vertexCount
}

// IsDirty reports whether staged data is waiting for Flush.
func (a *ArrayObject) IsDirty() bool {
	return a.dirty
}

// Vertex decodes the staged vertex #idx.
func (a *ArrayObject) Vertex(idx int) ([]float64, error) {
	if a.destroyed {
		return nil, ErrDestroyed
	}
	if idx < 0 || idx >= a.vertexCount {
		return nil, &ErrOutOfRange{Offset: idx, Count: 1, VertexCount: a.vertexCount}
	}
	stride := a.layout.ByteStride()
	elemSize := a.layout.Type.Size()
	vertex := a.data[idx*stride:]
	result := make([]float64, a.layout.Components)
	for c := range result {
		result[c] = a.layout.Type.get(vertex[c*elemSize:])
	}
	return result, nil
}

func (a *ArrayObject) checkArity(vectors []vec.Vector) error {
	for idx, v := range vectors {
		if v == nil {
			return &ErrLayoutMismatch{Expected: a.layout.Components, Actual: 0, Index: idx}
		}
		if arity := v.Arity(); arity != a.layout.Components {
			return &ErrLayoutMismatch{Expected: a.layout.Components, Actual: arity, Index: idx}
		}
	}
	return nil
}

func (a *ArrayObject) encode(dst []byte, vectors []vec.Vector) {
	stride := a.layout.ByteStride()
	elemSize := a.layout.Type.Size()
	components := make([]float64, 0, a.layout.Components)
	for idx, v := range vectors {
		vertex := dst[idx*stride : (idx+1)*stride]
		clear(vertex)
		components = v.AppendComponents(components[:0])
		for c, value := range components {
			a.layout.Type.put(vertex[c*elemSize:], value)
		}
	}
}

// SetData replaces the whole staged buffer. On error nothing is changed.
func (a *ArrayObject) SetData(vectors []vec.Vector) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if err := a.checkArity(vectors); err != nil {
		return err
	}

	data := make([]byte, len(vectors)*a.layout.ByteStride())
	a.encode(data, vectors)

	a.sizeChange = a.sizeChange || len(vectors) != a.vertexCount
	a.data = data
	a.vertexCount = len(vectors)
	a.dirty = true
	a.dirtyFrom, a.dirtyTo = 0, a.vertexCount
	return nil
}

// SetSubData replaces the vertices starting at offset. The range must lie
// within the currently staged vertices. On error nothing is changed.
func (a *ArrayObject) SetSubData(offset int, vectors []vec.Vector) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if err := a.checkArity(vectors); err != nil {
		return err
	}
	if offset < 0 || offset+len(vectors) > a.vertexCount {
		return &ErrOutOfRange{Offset: offset, Count: len(vectors), VertexCount: a.vertexCount}
	}
	if len(vectors) == 0 {
		return nil
	}

	stride := a.layout.ByteStride()
	a.encode(a.data[offset*stride:], vectors)

	end := offset + len(vectors)
	if !a.dirty {
		a.dirty = true
		a.dirtyFrom, a.dirtyTo = offset, end
		return nil
	}
	a.dirtyFrom = min(a.dirtyFrom, offset)
	a.dirtyTo = max(a.dirtyTo, end)
	return nil
}

// Flush hands the pending range to the renderer. This is the only point
// where staged data is considered committed; if the renderer fails, the
// range stays pending and a later Flush retries it.
func (a *ArrayObject) Flush(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Flush[%s]", a.id)
	defer func() { logger.Tracef(ctx, "/Flush[%s]: %v", a.id, _err) }()

	if a.destroyed {
		return ErrDestroyed
	}
	if !a.dirty {
		return nil
	}

	from, to := a.dirtyFrom, a.dirtyTo
	if a.sizeChange {
		from, to = 0, a.vertexCount
	}
	stride := a.layout.ByteStride()
	data := make([]byte, (to-from)*stride)
	copy(data, a.data[from*stride:to*stride])

	upload := Upload{
		Buffer:        a.id,
		Layout:        a.layout,
		Offset:        from,
		VertexCount:   to - from,
		TotalVertices: a.vertexCount,
		Data:          data,
	}
	if err := a.renderer.Upload(ctx, upload); err != nil {
		return fmt.Errorf("unable to upload %d vertices of %s: %w", upload.VertexCount, a.id, err)
	}
	logger.Debugf(ctx, "uploaded vertices [%d, %d) of %d to %s (%s)", from, to, a.vertexCount, a.id, a.layout.Usage.GLName())

	a.dirty = false
	a.sizeChange = false
	return nil
}

// Destroy releases the buffer on the renderer side. All later operations
// return ErrDestroyed.
func (a *ArrayObject) Destroy(ctx context.Context) error {
	if a.destroyed {
		return ErrDestroyed
	}
	if err := a.renderer.Release(ctx, a.id); err != nil {
		return fmt.Errorf("unable to release %s: %w", a.id, err)
	}
	logger.Debugf(ctx, "released %s", a.id)
	a.destroyed = true
	a.data = nil
	a.vertexCount = 0
	a.dirty = false
	return nil
}
