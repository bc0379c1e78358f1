package stream

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/iamcalledrob/circular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/curve/pkg/gl"
	"github.com/xaionaro-go/curve/pkg/vec"
)

func TestFramesRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := New(ctx, 4096)

	a, err := gl.NewArrayObject(gl.Layout{Components: 2, Usage: gl.UsageStatic}, r)
	require.NoError(t, err)
	require.NoError(t, a.SetData([]vec.Vector{vec.V2(0, 0), vec.V2(1, 0.5), vec.V2(2, 2)}))
	require.NoError(t, a.Flush(ctx))
	require.NoError(t, a.SetSubData(1, []vec.Vector{vec.V2(1, 1)}))
	require.NoError(t, a.Flush(ctx))
	require.NoError(t, a.Destroy(ctx))
	require.NoError(t, r.Close())

	var frames []Frame
	for {
		frame, err := ReadFrame(r)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		frames = append(frames, frame)
	}
	require.Len(t, frames, 3)

	assert.Equal(t, FrameKindUpload, frames[0].Kind)
	assert.Equal(t, a.ID(), frames[0].Upload.Buffer)
	assert.Equal(t, gl.UsageStatic, frames[0].Upload.Layout.Usage)
	assert.True(t, frames[0].Upload.IsFull())
	vertices, err := frames[0].Upload.Vertices()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 0}, {1, 0.5}, {2, 2}}, vertices)

	assert.Equal(t, 1, frames[1].Upload.Offset)
	assert.Equal(t, 1, frames[1].Upload.VertexCount)
	assert.Equal(t, 3, frames[1].Upload.TotalVertices)

	assert.Equal(t, Frame{Kind: FrameKindRelease, Buffer: a.ID()}, frames[2])
}

func readAll(t *testing.T, r io.Reader) []Frame {
	var frames []Frame
	for {
		frame, err := ReadFrame(r)
		if err == io.EOF {
			return frames
		}
		require.NoError(t, err)
		frames = append(frames, frame)
	}
}

func TestFullBufferKeepsArrayDirty(t *testing.T) {
	ctx := context.Background()
	r := New(ctx, uint(HeaderSize+12))

	a, err := gl.NewArrayObject(gl.Layout{Components: 1, Type: gl.ElementTypeFloat64}, r)
	require.NoError(t, err)
	require.NoError(t, a.SetData([]vec.Vector{vec.Scalar{1}, vec.Scalar{2}}))

	err = a.Flush(ctx)
	require.ErrorIs(t, err, circular.ErrNoSpace)
	assert.True(t, a.IsDirty())

	require.NoError(t, a.SetData([]vec.Vector{vec.Scalar{3}}))
	require.NoError(t, a.Flush(ctx))
	assert.False(t, a.IsDirty())
	require.NoError(t, r.Close())

	frames := readAll(t, r)
	require.Len(t, frames, 1)
	vertices, err := frames[0].Upload.Vertices()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3}}, vertices)
}

func TestRetryAfterDrain(t *testing.T) {
	ctx := context.Background()
	r := New(ctx, uint(2*HeaderSize+16))
	layout := gl.Layout{Components: 1, Type: gl.ElementTypeFloat64}

	a, err := gl.NewArrayObject(layout, r)
	require.NoError(t, err)
	require.NoError(t, a.SetData([]vec.Vector{vec.Scalar{1}}))
	require.NoError(t, a.Flush(ctx))

	b, err := gl.NewArrayObject(layout, r)
	require.NoError(t, err)
	require.NoError(t, b.SetData([]vec.Vector{vec.Scalar{2}, vec.Scalar{3}}))
	require.ErrorIs(t, b.Flush(ctx), circular.ErrNoSpace)
	assert.True(t, b.IsDirty())

	frame, err := ReadFrame(r)
	require.NoError(t, err)
	assert.Equal(t, a.ID(), frame.Upload.Buffer)

	require.NoError(t, b.Flush(ctx))
	assert.False(t, b.IsDirty())
	require.NoError(t, a.Destroy(ctx))
	require.NoError(t, r.Close())

	frames := readAll(t, r)
	require.Len(t, frames, 2)
	assert.Equal(t, b.ID(), frames[0].Upload.Buffer)
	vertices, err := frames[0].Upload.Vertices()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}, {3}}, vertices)
	assert.Equal(t, Frame{Kind: FrameKindRelease, Buffer: a.ID()}, frames[1])
}

func TestWaitForSpace(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	r := New(ctx, uint(HeaderSize+8))
	r.WaitForSpace = true

	a, err := gl.NewArrayObject(gl.Layout{Components: 1, Type: gl.ElementTypeFloat64}, r)
	require.NoError(t, err)
	require.NoError(t, a.SetData([]vec.Vector{vec.Scalar{1}}))
	require.NoError(t, a.Flush(ctx))

	destroyErrCh := make(chan error, 1)
	go func() {
		destroyErrCh <- a.Destroy(ctx)
	}()
	select {
	case err := <-destroyErrCh:
		t.Fatalf("the release was written into a full buffer: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	frame, err := ReadFrame(r)
	require.NoError(t, err)
	assert.Equal(t, FrameKindUpload, frame.Kind)
	require.NoError(t, <-destroyErrCh)

	b, err := gl.NewArrayObject(gl.Layout{Components: 1, Type: gl.ElementTypeFloat64}, r)
	require.NoError(t, err)
	require.NoError(t, b.SetData([]vec.Vector{vec.Scalar{1}, vec.Scalar{2}}))
	require.ErrorIs(t, b.Flush(ctx), circular.ErrNoSpace, "a frame larger than the buffer never fits")

	require.NoError(t, r.Close())
	assert.Equal(t, []Frame{{Kind: FrameKindRelease, Buffer: a.ID()}}, readAll(t, r))
}

func TestReadBlocksUntilWritten(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	r := New(ctx, 1024)

	frameCh := make(chan Frame)
	errCh := make(chan error, 1)
	go func() {
		frame, err := ReadFrame(r)
		if err != nil {
			errCh <- err
			return
		}
		frameCh <- frame
	}()

	require.NoError(t, r.Release(ctx, 42))
	select {
	case frame := <-frameCh:
		assert.Equal(t, gl.BufferID(42), frame.Buffer)
	case err := <-errCh:
		require.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("timeout")
	}

	require.NoError(t, r.Close())
	assert.Error(t, r.Release(ctx, 43), "a closed renderer accepts nothing")
	n, err := r.Read(make([]byte, 1))
	assert.Zero(t, n)
	assert.Equal(t, io.EOF, err)
}

func TestReadFrameErrors(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)

	upload := gl.Upload{
		Buffer:        1,
		Layout:        gl.Layout{Components: 2},
		VertexCount:   1,
		TotalVertices: 1,
		Data:          make([]byte, 8),
	}
	encoded := encodeUpload(upload)

	_, err = ReadFrame(bytes.NewReader(encoded[:len(encoded)-1]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadFrame(bytes.NewReader(encoded[:HeaderSize-1]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	corrupted := bytes.Clone(encoded)
	corrupted[0] = byte(EndOfFrameKind)
	_, err = ReadFrame(bytes.NewReader(corrupted))
	assert.Error(t, err)

	upload.VertexCount = 2
	_, err = ReadFrame(bytes.NewReader(encodeUpload(upload)))
	assert.Error(t, err, "data length must match the vertex count")
}
