package interpolation

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/curve/pkg/field"
)

// ValidateCount fails if there are fewer samples than kind accepts.
func ValidateCount(kind Kind, count int) error {
	if count < kind.MinSamples() {
		return NewErrDegenerateInput(kind, fmt.Sprintf("not enough samples: %d < %d", count, kind.MinSamples()), nil)
	}
	return nil
}

// ValidateDistinct checks the sample count and that no two parameters are
// equal within the field's tolerance. Every offending pair is reported.
func ValidateDistinct[F, V any](
	kind Kind,
	f field.Field[F],
	samples []Sample[F, V],
) error {
	if err := ValidateCount(kind, len(samples)); err != nil {
		return err
	}

	var mErr *multierror.Error
	for i := range samples {
		for j := i + 1; j < len(samples); j++ {
			if f.Near(samples[i].T, samples[j].T) {
				mErr = multierror.Append(mErr, ErrDuplicateParameter{First: i, Second: j})
			}
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return NewErrDegenerateInput(kind, "parameters are not pairwise distinct", err)
	}
	return nil
}

// Span returns the smallest and the largest parameter of samples.
// It panics on an empty slice.
func Span[F, V any](f field.Ordered[F], samples []Sample[F, V]) (F, F) {
	lo, hi := samples[0].T, samples[0].T
	for _, s := range samples[1:] {
		if f.Compare(s.T, lo) < 0 {
			lo = s.T
		}
		if f.Compare(s.T, hi) > 0 {
			hi = s.T
		}
	}
	return lo, hi
}
