// Package random provides the seedable random source trees are grown from.
package random

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// stream selects the PCG sequence; it is fixed so a seed alone
// determines the output.
const stream = 0x9e3779b97f4a7c15

// Source draws from a single PCG stream. Two Sources built from the same
// seed produce identical sequences. A Source is not safe for concurrent use.
type Source struct {
	seed int64
	pcg  *rand.PCG
	rng  *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	pcg := rand.NewPCG(uint64(seed), stream)
	return &Source{
		seed: seed,
		pcg:  pcg,
		rng:  rand.New(pcg),
	}
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Uniform returns a value in [lo, hi). When lo == hi it returns lo.
func (s *Source) Uniform(lo, hi float64) float64 {
	return distuv.Uniform{Min: lo, Max: hi, Src: s.pcg}.Rand()
}

// Normal returns a normally distributed value. A zero stddev returns mean.
func (s *Source) Normal(mean, stddev float64) float64 {
	return distuv.Normal{Mu: mean, Sigma: stddev, Src: s.pcg}.Rand()
}

// Choice returns an index in [0, n). n must be positive.
func (s *Source) Choice(n int) int {
	return s.rng.IntN(n)
}
