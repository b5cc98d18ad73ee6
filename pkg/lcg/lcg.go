// 14 Oct 2026

// Package lcg is the random number generator for the fasta kernel.
// It is a linear congruential generator with tiny constants, so the
// output can be reproduced exactly by anyone who follows the recurrence
//     seed' = (seed * IA + IC) mod IM
// There is no global state. A seed belongs to whoever holds it and is
// passed in and handed back.
package lcg

import (
	"errors"
	"fmt"
)

const (
	IM = 139968
	IA = 3877
	IC = 29573
)

// oneOverIM is rounded once to float32. Draws are computed in float32
// and then compared against float32 cumulative probabilities.
const oneOverIM float32 = 1.0 / IM

// Seed is the complete state of the generator. It is always in [0, IM).
type Seed uint32

var ErrNoSym = errors.New("alphabet has no symbols")

// Next is a pure function. Given a seed, it returns the following
// seed and a value in [0, max). A seed outside [0, IM) is reduced
// first, so s*IA cannot overflow.
func Next(s Seed, max float32) (Seed, float32) {
	s = ((s%IM)*IA + IC) % IM
	return s, max * float32(s) * oneOverIM
}

// Alphabet is a set of symbols with cumulative probabilities, stored in
// the order they were given.
type Alphabet struct {
	syms []byte
	cum  []float32
}

// NewAlphabet builds the cumulative table. The running sum is kept in
// float64 and each entry is stored as float32. The probabilities do not
// have to add up to exactly 1, and we do not renormalise them.
func NewAlphabet(syms []byte, probs []float32) (*Alphabet, error) {
	if len(syms) == 0 {
		return nil, ErrNoSym
	}
	if len(syms) != len(probs) {
		return nil, fmt.Errorf("%d symbols but %d probabilities", len(syms), len(probs))
	}
	a := &Alphabet{
		syms: append([]byte(nil), syms...),
		cum:  make([]float32, len(probs)),
	}
	var cp float64
	for i, p := range probs {
		cp += float64(p)
		a.cum[i] = float32(cp)
	}
	return a, nil
}

// Len is the number of symbols
func (a *Alphabet) Len() int { return len(a.syms) }

// pick returns the first symbol whose cumulative probability is
// bigger than r. If rounding leaves r at or above the last entry, we
// return the last symbol.
func (a *Alphabet) pick(r float32) byte {
	for i, c := range a.cum {
		if r < c {
			return a.syms[i]
		}
	}
	return a.syms[len(a.syms)-1]
}

// Sample draws one symbol and returns it with the new seed.
func (a *Alphabet) Sample(s Seed) (Seed, byte) {
	s, r := Next(s, 1)
	return s, a.pick(r)
}

// Sampler couples an alphabet with the seed it owns.
type Sampler struct {
	alpha *Alphabet
	seed  Seed
}

// NewSampler returns a sampler starting from seed. To chain two
// samplers, pass the first one's Seed() in here.
func NewSampler(a *Alphabet, seed Seed) *Sampler {
	return &Sampler{alpha: a, seed: seed % IM}
}

// Seed returns the current state, after all draws so far.
func (s *Sampler) Seed() Seed { return s.seed }

// Sample draws one symbol.
func (s *Sampler) Sample() byte {
	var c byte
	s.seed, c = s.alpha.Sample(s.seed)
	return c
}

// Fill draws len(dst) symbols in order. The result is the same as
// calling Sample len(dst) times.
func (s *Sampler) Fill(dst []byte) {
	seed := s.seed
	var r float32
	for i := range dst {
		seed, r = Next(seed, 1)
		dst[i] = s.alpha.pick(r)
	}
	s.seed = seed
}
