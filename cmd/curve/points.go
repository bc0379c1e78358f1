package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/curve/pkg/interpolation"
	"github.com/xaionaro-go/curve/pkg/vec"
)

type point struct {
	T          float64
	Components []float64
}

// parsePoints parses "t:x[,y[,z[,w]]];..." All points must have the same
// amount of components.
func parsePoints(s string) ([]point, error) {
	var (
		result []point
		mErr   *multierror.Error
	)
	for idx, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		p, err := parsePoint(item)
		if err != nil {
			mErr = multierror.Append(mErr, fmt.Errorf("point #%d ('%s'): %w", idx, item, err))
			continue
		}
		if len(result) > 0 && len(p.Components) != len(result[0].Components) {
			mErr = multierror.Append(mErr, fmt.Errorf("point #%d ('%s') has %d components, expected %d", idx, item, len(p.Components), len(result[0].Components)))
			continue
		}
		result = append(result, p)
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no points given")
	}
	return result, nil
}

func parsePoint(s string) (point, error) {
	tStr, valueStr, ok := strings.Cut(s, ":")
	if !ok {
		return point{}, fmt.Errorf("expected 't:x[,y[,z[,w]]]'")
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(tStr), 64)
	if err != nil {
		return point{}, fmt.Errorf("unable to parse the parameter: %w", err)
	}
	p := point{T: t}
	for _, c := range strings.Split(valueStr, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(c), 64)
		if err != nil {
			return point{}, fmt.Errorf("unable to parse a component: %w", err)
		}
		p.Components = append(p.Components, v)
	}
	if len(p.Components) > 4 {
		return point{}, fmt.Errorf("at most 4 components are supported, got %d", len(p.Components))
	}
	return p, nil
}

func toSamples[V vec.Element[V]](points []point) []interpolation.Sample[float64, V] {
	var zero V
	result := make([]interpolation.Sample[float64, V], 0, len(points))
	for _, p := range points {
		result = append(result, interpolation.Sample[float64, V]{
			T:     p.T,
			Value: zero.WithComponents(p.Components),
		})
	}
	return result
}
