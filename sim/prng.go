package sim

import (
	"math/rand"
	"time"
)

// PRNG is the single seeded source behind map generation and spawning.
type PRNG struct {
	rng  *rand.Rand
	Seed int64
}

// NewPRNG seeds from the clock when seed is 0.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{rng: rand.New(rand.NewSource(seed)), Seed: seed}
}

func (p *PRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return p.rng.Intn(n)
}

func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Range returns a float in [min, max).
func (p *PRNG) Range(min, max float64) float64 {
	return min + p.rng.Float64()*(max-min)
}
