package card

import (
	"math/rand/v2"
)

// Source is the randomness used by every procedural draw in the card.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. A zero seed draws from the
// runtime's global generator, so each launch differs.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Range is an inclusive interval drawn uniformly.
type Range struct {
	Min, Max float64
}

// Draw returns a uniform value in [Min, Max].
func (r Range) Draw(src Source) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + src.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}
