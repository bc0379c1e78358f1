package field

import (
	"math/big"
)

// Rat is the field of exact rationals.
//
// Values are *big.Rat and are treated as immutable: every operation
// allocates its result. A nil *big.Rat is not a valid element.
type Rat struct{}

var _ Ordered[*big.Rat] = Rat{}

func (Rat) Zero() *big.Rat { return new(big.Rat) }
func (Rat) One() *big.Rat  { return big.NewRat(1, 1) }

func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }

// Inv panics on zero, as big.Rat does.
func (Rat) Inv(a *big.Rat) *big.Rat { return new(big.Rat).Inv(a) }

func (Rat) Equal(a, b *big.Rat) bool  { return a.Cmp(b) == 0 }
func (Rat) Near(a, b *big.Rat) bool   { return a.Cmp(b) == 0 }
func (Rat) Compare(a, b *big.Rat) int { return a.Cmp(b) }
