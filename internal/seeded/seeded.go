// Package seeded provides a small deterministic pseudo-random source keyed by
// an arbitrary string. The same seed always yields the same sequence, which is
// what lets an encoder and a decoder agree on shuffles without sharing state.
package seeded

import (
	"unicode/utf16"
)

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Generator is a linear congruential generator. It is not safe for concurrent
// use; build one per goroutine.
type Generator struct {
	state int64
}

// HashSeed reduces seed to a non-negative integer with a rolling base-31 hash
// over its UTF-16 code units, truncated to 32 bits at every step.
func HashSeed(seed string) int64 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		hash = hash*31 + int32(unit)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return h
}

// New returns a generator seeded from seed.
func New(seed string) *Generator {
	return &Generator{state: HashSeed(seed)}
}

// Next advances the generator and returns a value in [0, 1).
func (g *Generator) Next() float64 {
	g.state = (g.state*multiplier + increment) % modulus
	return float64(g.state) / modulus
}

// Intn returns a value in [0, bound). Callers always pass a positive bound.
func (g *Generator) Intn(bound int) int {
	return int(g.Next() * float64(bound))
}

// Shuffle returns a permuted copy of in using a Fisher-Yates pass from the
// last element down. The input slice is left untouched.
func Shuffle[T any](g *Generator, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := g.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
