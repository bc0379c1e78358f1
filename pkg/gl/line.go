package gl

import (
	"context"
	"fmt"
	"math"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/vec"
)

type LineConfig struct {
	Sampling Sampling
	Type     ElementType
	Usage    Usage
}

// Line is a line strip staged from a sampled curve.
type Line[V vec.Element[V]] struct {
	config  LineConfig
	array   *ArrayObject
	vectors []vec.Vector
}

func NewLine[V vec.Element[V]](
	renderer Renderer,
	cfg LineConfig,
) (*Line[V], error) {
	if err := cfg.Sampling.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling: %w", err)
	}
	var zero V
	array, err := NewArrayObject(Layout{
		Components: zero.Arity(),
		Type:       cfg.Type,
		Usage:      cfg.Usage,
	}, renderer)
	if err != nil {
		return nil, fmt.Errorf("unable to create the array object: %w", err)
	}
	return &Line[V]{
		config: cfg,
		array:  array,
	}, nil
}

// Update samples the interpolator over the span of its samples and stages
// the result.
func (l *Line[V]) Update(
	ctx context.Context,
	interp interpolation.Interpolator[float64, V],
) error {
	samples := interp.Samples()
	if len(samples) == 0 {
		return fmt.Errorf("the interpolator has no samples")
	}
	from, to := interpolation.Span(field.Float64{}, samples)
	return l.UpdateRange(ctx, interp, from, to)
}

// UpdateRange samples the interpolator over [from, to] and stages the
// result. Parameters outside the sampled span are extrapolated.
func (l *Line[V]) UpdateRange(
	ctx context.Context,
	interp interpolation.Interpolator[float64, V],
	from, to float64,
) (_err error) {
	logger.Tracef(ctx, "UpdateRange(%s, %v, %v)", interp.Kind(), from, to)
	defer func() { logger.Tracef(ctx, "/UpdateRange(%s, %v, %v): %v", interp.Kind(), from, to, _err) }()

	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return fmt.Errorf("the range [%v, %v] is not finite", from, to)
	}
	if from > to {
		return fmt.Errorf("the range is reversed: %v > %v", from, to)
	}

	points := Points(l.config.Sampling, interp.Evaluate, from, to)
	l.vectors = l.vectors[:0]
	for _, p := range points {
		l.vectors = append(l.vectors, p)
	}
	if err := l.array.SetData(l.vectors); err != nil {
		return fmt.Errorf("unable to stage %d points: %w", len(points), err)
	}
	return nil
}

func (l *Line[V]) IsDirty() bool {
	return l.array.IsDirty()
}

func (l *Line[V]) Flush(ctx context.Context) error {
	return l.array.Flush(ctx)
}

func (l *Line[V]) Destroy(ctx context.Context) error {
	return l.array.Destroy(ctx)
}

func (l *Line[V]) ArrayObject() *ArrayObject {
	return l.array
}
