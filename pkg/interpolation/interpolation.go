// Package interpolation defines the contract shared by all curve
// interpolation strategies: sample points over a field, the Interpolator
// interface, strategy kinds and input validation.
//
// Strategies live in sub-packages (linear, lagrange, neville, aitken, krogh,
// fourier) and are usually selected through package strategy.
package interpolation

// Sample is one known point of the underlying relation: the value at
// parameter T.
type Sample[F, V any] struct {
	T     F
	Value V
}

// Interpolator estimates the value of a relation at arbitrary parameters
// from a finite set of samples.
//
// Implementations own a private copy of their samples and keep no mutable
// state between evaluations, so Evaluate may be called any number of times
// in any order. Parameters outside the sampled span are extrapolated.
type Interpolator[F, V any] interface {
	Kind() Kind
	Evaluate(t F) V

	// Samples returns a copy of the samples the interpolator was built from.
	Samples() []Sample[F, V]
}

// Clone returns a copy of samples that does not alias the input.
func Clone[F, V any](samples []Sample[F, V]) []Sample[F, V] {
	result := make([]Sample[F, V], len(samples))
	copy(result, samples)
	return result
}
