package neville

import (
	"github.com/xaionaro-go/curve/pkg/field"
	"github.com/xaionaro-go/curve/pkg/interpolation"
)

// Tableau is Neville's tableau for a single query parameter, grown one
// sample at a time. It keeps the last row, P[k-j..k](t) for j = 0..k, so
// each Push costs O(n).
//
// A Tableau is not safe for concurrent use.
type Tableau[F, V any] struct {
	space field.VectorSpace[F, V]
	t     F
	ts    []F
	row   []V
}

func NewTableau[F, V any](space field.VectorSpace[F, V], t F) *Tableau[F, V] {
	return &Tableau[F, V]{
		space: space,
		t:     t,
	}
}

// Push adds a sample. On error the tableau is left unchanged.
func (tab *Tableau[F, V]) Push(sample interpolation.Sample[F, V]) error {
	f := tab.space.Scalars()
	for idx, t := range tab.ts {
		if f.Near(t, sample.T) {
			return interpolation.NewErrDegenerateInput(
				interpolation.KindNeville,
				"parameters are not pairwise distinct",
				interpolation.ErrDuplicateParameter{First: idx, Second: len(tab.ts)},
			)
		}
	}

	k := len(tab.ts)
	row := make([]V, k+1)
	row[0] = sample.Value
	// P[i..k] = ((t - t_i)·P[i+1..k] - (t - t_k)·P[i..k-1]) / (t_k - t_i), i = k-j
	for j := 1; j <= k; j++ {
		ti := tab.ts[k-j]
		inv := f.Inv(field.Sub(f, sample.T, ti))
		a := f.Mul(field.Sub(f, tab.t, ti), inv)
		b := f.Mul(field.Sub(f, tab.t, sample.T), inv)
		row[j] = tab.space.Add(
			tab.space.Scale(a, row[j-1]),
			tab.space.Neg(tab.space.Scale(b, tab.row[j-1])),
		)
	}

	tab.ts = append(tab.ts, sample.T)
	tab.row = row
	return nil
}

// Len is the number of samples pushed so far.
func (tab *Tableau[F, V]) Len() int {
	return len(tab.ts)
}

// Value is the interpolant through all pushed samples evaluated at the
// tableau's parameter, or the zero vector if nothing was pushed.
func (tab *Tableau[F, V]) Value() V {
	if len(tab.row) == 0 {
		return tab.space.Zero()
	}
	return tab.row[len(tab.row)-1]
}
