package main

import (
	"context"
	"fmt"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/curve/pkg/gl"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/interpolation/strategy"
	"github.com/xaionaro-go/curve/pkg/render/stream"
	"github.com/xaionaro-go/curve/pkg/vec"
	"github.com/xaionaro-go/observability"
)

// run builds the curve, writes the evaluations and streams the staged line
// to out. With the binary format out carries frames only, so the
// evaluations go to diag.
func run[V vec.Element[V]](
	ctx context.Context,
	cfg config,
	points []point,
	out io.Writer,
	diag io.Writer,
) (_err error) {
	logger.Debugf(ctx, "run: %s over %d points", cfg.Kind, len(points))
	defer func() { logger.Debugf(ctx, "/run: %v", _err) }()

	interp, err := strategy.Build(ctx, cfg.Kind, vec.Space[V]{}, toSamples[V](points))
	if err != nil {
		return fmt.Errorf("unable to build the interpolator: %w", err)
	}

	evalOut, evalPrefix := out, "# "
	if cfg.Format == "binary" {
		evalOut, evalPrefix = diag, ""
	}
	for _, t := range cfg.Eval {
		v := interp.Evaluate(t)
		if _, err := fmt.Fprintf(evalOut, "%sf(%g) = %s\n", evalPrefix, t, formatComponents(v.AppendComponents(nil))); err != nil {
			return fmt.Errorf("unable to write the evaluation result: %w", err)
		}
	}

	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	renderer := stream.New(ctx, cfg.BufferSize)
	renderer.WaitForSpace = true
	drainErrCh := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		err := runStream(ctx, cfg, renderer, out)
		if err != nil {
			cancelFn()
		}
		drainErrCh <- err
	})

	var mErr *multierror.Error
	if err := stage[V](ctx, cfg, renderer, interp); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	if err := renderer.Close(); err != nil {
		mErr = multierror.Append(mErr, fmt.Errorf("unable to close the renderer: %w", err))
	}
	if err := <-drainErrCh; err != nil {
		mErr = multierror.Append(mErr, err)
	}
	return mErr.ErrorOrNil()
}

func stage[V vec.Element[V]](
	ctx context.Context,
	cfg config,
	renderer gl.Renderer,
	interp interpolation.Interpolator[float64, V],
) error {
	line, err := gl.NewLine[V](renderer, gl.LineConfig{
		Sampling: cfg.Sampling,
		Type:     cfg.Type,
		Usage:    cfg.Usage,
	})
	if err != nil {
		return fmt.Errorf("unable to create the line: %w", err)
	}
	if err := line.Update(ctx, interp); err != nil {
		return fmt.Errorf("unable to sample the curve: %w", err)
	}
	if err := line.Flush(ctx); err != nil {
		return fmt.Errorf("unable to flush the line: %w", err)
	}
	if err := line.Destroy(ctx); err != nil {
		return fmt.Errorf("unable to destroy the line: %w", err)
	}
	return nil
}
