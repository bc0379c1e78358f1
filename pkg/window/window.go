// Package window keeps a sliding window of the most recent samples and
// builds interpolators from it, for streaming input and animated playback.
package window

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/curve/pkg/dlist"
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/interpolation/strategy"
)

type Window[F, V any] struct {
	kind    interpolation.Kind
	space   field.VectorSpace[F, V]
	samples *dlist.CircularDList[interpolation.Sample[F, V]]
}

// New returns a window holding at most size samples. Interpolators built
// from it are of the given kind. It panics if size < 1.
func New[F, V any](
	kind interpolation.Kind,
	space field.VectorSpace[F, V],
	size int,
) *Window[F, V] {
	return &Window[F, V]{
		kind:    kind,
		space:   space,
		samples: dlist.New[interpolation.Sample[F, V]](size),
	}
}

// Push appends a sample, evicting the oldest one when the window is full.
// A sample whose parameter equals one already in the window is rejected
// and the window is left unchanged. For KindKrogh a repeat of the newest
// parameter is accepted: it carries the next derivative at that parameter.
func (w *Window[F, V]) Push(sample interpolation.Sample[F, V]) error {
	f := w.space.Scalars()
	last := w.samples.Len() - 1
	idx := 0
	for s := range w.samples.Forward() {
		if f.Near(s.T, sample.T) && !(w.kind == interpolation.KindKrogh && idx == last) {
			return interpolation.NewErrDegenerateInput(
				w.kind,
				"the parameter is already in the window",
				interpolation.ErrDuplicateParameter{First: idx, Second: w.samples.Len()},
			)
		}
		idx++
	}
	w.samples.PushBack(sample)
	return nil
}

func (w *Window[F, V]) Len() int {
	return w.samples.Len()
}

func (w *Window[F, V]) Kind() interpolation.Kind {
	return w.kind
}

// Samples returns the window contents from oldest to newest.
func (w *Window[F, V]) Samples() []interpolation.Sample[F, V] {
	return w.samples.Slice()
}

func (w *Window[F, V]) Reset() {
	w.samples.Clear()
}

// Interpolator builds an interpolator over the current window contents.
func (w *Window[F, V]) Interpolator(ctx context.Context) (interpolation.Interpolator[F, V], error) {
	logger.Tracef(ctx, "window.Interpolator: %d samples", w.samples.Len())
	it, err := strategy.Build(ctx, w.kind, w.space, w.samples.Slice())
	if err != nil {
		return nil, fmt.Errorf("unable to build a %s interpolator over the window: %w", w.kind, err)
	}
	return it, nil
}
