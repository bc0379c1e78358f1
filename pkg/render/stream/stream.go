// Package stream is a gl.Renderer that serializes every upload and release
// into a circular byte buffer, to be consumed as an io.Reader (e.g. written
// to a file or piped to another process that owns the GPU).
package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/iamcalledrob/circular"
	"github.com/xaionaro-go/curve/pkg/gl"
)

type Renderer struct {
	readCtx context.Context

	bufferLocker sync.Mutex
	buffer       *circular.Buffer
	closed       bool

	writeProgressedCh chan struct{}
	readProgressedCh  chan struct{}

	// WaitForSpace makes an upload that does not fit into the free space
	// block until a reader consumes enough bytes, instead of failing. It
	// must be set before the first upload.
	WaitForSpace bool
}

var (
	_ gl.Renderer = (*Renderer)(nil)
	_ io.Reader   = (*Renderer)(nil)
)

// New returns a renderer buffering at most bufferSize bytes of frames. A
// call that does not fit into the free space fails with an error wrapping
// circular.ErrNoSpace (unless WaitForSpace is set), and the flushing array
// object stays dirty. A frame larger than bufferSize always fails.
//
// ctx bounds blocking Read calls.
func New(ctx context.Context, bufferSize uint) *Renderer {
	return &Renderer{
		readCtx:           ctx,
		buffer:            circular.NewBuffer(int(bufferSize)),
		writeProgressedCh: make(chan struct{}),
		readProgressedCh:  make(chan struct{}),
	}
}

func (r *Renderer) Upload(ctx context.Context, upload gl.Upload) (_err error) {
	logger.Tracef(ctx, "Upload[%s]: %d vertices at %d", upload.Buffer, upload.VertexCount, upload.Offset)
	defer func() { logger.Tracef(ctx, "/Upload[%s]: %v", upload.Buffer, _err) }()
	return r.write(ctx, encodeUpload(upload))
}

func (r *Renderer) Release(ctx context.Context, buffer gl.BufferID) (_err error) {
	logger.Tracef(ctx, "Release[%s]", buffer)
	defer func() { logger.Tracef(ctx, "/Release[%s]: %v", buffer, _err) }()
	return r.write(ctx, encodeRelease(buffer))
}

func (r *Renderer) write(ctx context.Context, frame []byte) error {
	r.bufferLocker.Lock()
	defer r.bufferLocker.Unlock()
	if len(frame) > r.buffer.Cap() {
		return fmt.Errorf("a frame of %d bytes exceeds the buffer capacity of %d bytes: %w", len(frame), r.buffer.Cap(), circular.ErrNoSpace)
	}

	// Write copies whatever fits, so a frame is only written as a whole.
	for {
		if r.closed {
			return fmt.Errorf("the renderer is closed")
		}
		space := r.buffer.Space()
		if space >= len(frame) {
			break
		}
		if !r.WaitForSpace {
			return fmt.Errorf("unable to write a frame of %d bytes, only %d bytes are free: %w", len(frame), space, circular.ErrNoSpace)
		}
		if err := r.waitForReadProgressed(ctx); err != nil {
			return fmt.Errorf("unable to wait for %d bytes of free space: %w", len(frame), err)
		}
	}

	w, err := r.buffer.Write(frame)
	if err != nil {
		return fmt.Errorf("unable to write a frame of %d bytes to the circular buffer: %w", len(frame), err)
	}
	if w != len(frame) {
		return fmt.Errorf("wrote != frame size: %d != %d", w, len(frame))
	}

	var oldCh chan struct{}
	oldCh, r.writeProgressedCh = r.writeProgressedCh, make(chan struct{})
	close(oldCh)
	return nil
}

// Read reads serialized frames, blocking until some are available. After
// Close it drains the buffer and then returns io.EOF.
func (r *Renderer) Read(p []byte) (_ret int, _err error) {
	logger.Tracef(r.readCtx, "Read, len:%d", len(p))
	defer func() { logger.Tracef(r.readCtx, "/Read, len:%d: %d, %v", len(p), _ret, _err) }()

	r.bufferLocker.Lock()
	defer r.bufferLocker.Unlock()
	for {
		n, err := r.buffer.Read(p)
		if err == nil {
			var oldCh chan struct{}
			oldCh, r.readProgressedCh = r.readProgressedCh, make(chan struct{})
			close(oldCh)
			return n, nil
		}
		if !errors.Is(err, io.EOF) {
			return n, err
		}
		if r.closed {
			return 0, io.EOF
		}
		if err := r.waitForWriteProgressed(r.readCtx); err != nil {
			return 0, err
		}
	}
}

func (r *Renderer) waitForWriteProgressed(ctx context.Context) error {
	logger.Tracef(ctx, "waitForWriteProgressed")
	defer logger.Tracef(ctx, "/waitForWriteProgressed")

	return r.waitFor(ctx, r.writeProgressedCh)
}

func (r *Renderer) waitForReadProgressed(ctx context.Context) error {
	logger.Tracef(ctx, "waitForReadProgressed")
	defer logger.Tracef(ctx, "/waitForReadProgressed")

	return r.waitFor(ctx, r.readProgressedCh)
}

// waitFor must be called with bufferLocker held; the lock is released for
// the duration of the wait.
func (r *Renderer) waitFor(ctx context.Context, ch <-chan struct{}) error {
	r.bufferLocker.Unlock()
	defer r.bufferLocker.Lock()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ch:
		return nil
	}
}

// Close makes further and waiting uploads fail and lets readers reach io.EOF.
func (r *Renderer) Close() error {
	r.bufferLocker.Lock()
	defer r.bufferLocker.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.writeProgressedCh)
	r.writeProgressedCh = make(chan struct{})
	close(r.readProgressedCh)
	r.readProgressedCh = make(chan struct{})
	return nil
}
