package gl

import (
	"context"
	"fmt"
	"sync/atomic"
)

// BufferID identifies a GPU buffer on the renderer side.
type BufferID uint64

var lastBufferID atomic.Uint64

func newBufferID() BufferID {
	return BufferID(lastBufferID.Add(1))
}

func (id BufferID) String() string {
	return fmt.Sprintf("buffer#%d", uint64(id))
}

// Renderer is the external rendering collaborator. It is informed only at
// flush and destroy time; it owns the GPU state.
type Renderer interface {
	Upload(ctx context.Context, upload Upload) error
	Release(ctx context.Context, buffer BufferID) error
}

// Upload is one committed buffer (sub)range.
type Upload struct {
	Buffer BufferID
	Layout Layout

	// Offset of the first vertex in Data, in vertices.
	Offset int

	// VertexCount is the amount of vertices in Data.
	VertexCount int

	// TotalVertices is the size of the whole buffer after this upload.
	// Offset == 0 && VertexCount == TotalVertices is a full replace.
	TotalVertices int

	// Data holds VertexCount vertices encoded per Layout.
	Data []byte
}

// IsFull reports whether the upload replaces the whole buffer.
func (u Upload) IsFull() bool {
	return u.Offset == 0 && u.VertexCount == u.TotalVertices
}

// Vertices decodes Data into one component slice per vertex.
func (u Upload) Vertices() ([][]float64, error) {
	layout := u.Layout.Normalized()
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	stride := layout.ByteStride()
	if len(u.Data) != u.VertexCount*stride {
		return nil, fmt.Errorf("expected %d bytes of data (%d vertices * %d), got %d", u.VertexCount*stride, u.VertexCount, stride, len(u.Data))
	}

	elemSize := layout.Type.Size()
	result := make([][]float64, 0, u.VertexCount)
	for idx := 0; idx < u.VertexCount; idx++ {
		vertex := u.Data[idx*stride:]
		components := make([]float64, layout.Components)
		for c := range components {
			components[c] = layout.Type.get(vertex[c*elemSize:])
		}
		result = append(result, components)
	}
	return result, nil
}
