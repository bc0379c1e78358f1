// Package strategy selects an interpolation algorithm by Kind, so callers
// can switch algorithms without touching call sites.
package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/interpolation/aitken"
	"github.com/xaionaro-go/curve/pkg/interpolation/fourier"
	"github.com/xaionaro-go/curve/pkg/interpolation/krogh"
	"github.com/xaionaro-go/curve/pkg/interpolation/lagrange"
	"github.com/xaionaro-go/curve/pkg/interpolation/linear"
	"github.com/xaionaro-go/curve/pkg/interpolation/neville"
)

// Default is the kind used when none is configured.
const Default = interpolation.KindNeville

// Build constructs an interpolator of the given kind.
//
// KindFourier additionally requires float64 scalars and a space that
// implements fourier.Space.
func Build[F, V any](
	ctx context.Context,
	kind interpolation.Kind,
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) (_ret interpolation.Interpolator[F, V], _err error) {
	logger.Tracef(ctx, "Build(%s, %d samples)", kind, len(samples))
	defer func() { logger.Tracef(ctx, "/Build(%s, %d samples): %v", kind, len(samples), _err) }()

	switch kind {
	case interpolation.KindLinear:
		it, err := linear.New(space, samples)
		if err != nil {
			return nil, err
		}
		return it, nil
	case interpolation.KindLagrange:
		it, err := lagrange.New(space, samples)
		if err != nil {
			return nil, err
		}
		return it, nil
	case interpolation.KindNeville:
		it, err := neville.New(space, samples)
		if err != nil {
			return nil, err
		}
		return it, nil
	case interpolation.KindAitken:
		it, err := aitken.New(space, samples)
		if err != nil {
			return nil, err
		}
		return it, nil
	case interpolation.KindKrogh:
		it, err := krogh.New(space, samples)
		if err != nil {
			return nil, err
		}
		return it, nil
	case interpolation.KindFourier:
		return buildFourier(space, samples)
	default:
		return nil, fmt.Errorf("unknown interpolation kind %s", kind)
	}
}

func buildFourier[F, V any](
	space field.VectorSpace[F, V],
	samples []interpolation.Sample[F, V],
) (interpolation.Interpolator[F, V], error) {
	fourierSpace, ok := any(space).(fourier.Space[V])
	if !ok {
		return nil, fmt.Errorf("fourier interpolation requires float64 scalars and component access, but %T does not provide them", space)
	}
	fourierSamples := any(samples).([]interpolation.Sample[float64, V])

	it, err := fourier.New(fourierSpace, fourierSamples)
	if err != nil {
		return nil, err
	}
	return any(it).(interpolation.Interpolator[F, V]), nil
}

// Usage returns the list of kinds for flag help texts, e.g. "linear|lagrange|...".
func Usage() string {
	names := make([]string, 0, len(interpolation.Kinds()))
	for _, kind := range interpolation.Kinds() {
		names = append(names, kind.String())
	}
	return strings.Join(names, "|")
}
