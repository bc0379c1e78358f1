package interpolation

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Kind identifies an interpolation strategy.
type Kind uint

const (
	KindUndefined = Kind(iota)
	KindLinear
	KindLagrange
	KindNeville
	KindAitken
	KindKrogh
	KindFourier
	EndOfKind
)

var _ pflag.Value = (*Kind)(nil)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindLinear:
		return "linear"
	case KindLagrange:
		return "lagrange"
	case KindNeville:
		return "neville"
	case KindAitken:
		return "aitken"
	case KindKrogh:
		return "krogh"
	case KindFourier:
		return "fourier"
	default:
		return fmt.Sprintf("unknown_kind_%d", uint(k))
	}
}

// Polynomial reports whether the strategy produces the unique interpolating
// polynomial of the samples. All polynomial kinds agree on the same input.
func (k Kind) Polynomial() bool {
	switch k {
	case KindLagrange, KindNeville, KindAitken, KindKrogh:
		return true
	default:
		return false
	}
}

// MinSamples is the smallest number of samples the strategy accepts.
func (k Kind) MinSamples() int {
	return 2
}

func (k *Kind) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for candidate := KindUndefined + 1; candidate < EndOfKind; candidate++ {
		if candidate.String() == s {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown interpolation kind '%s'", s)
}

func (k *Kind) Type() string {
	return "interpolation-kind"
}

// Kinds returns all defined kinds in declaration order.
func Kinds() []Kind {
	result := make([]Kind, 0, int(EndOfKind)-1)
	for k := KindUndefined + 1; k < EndOfKind; k++ {
		result = append(result, k)
	}
	return result
}
