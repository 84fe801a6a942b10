package battle

import "math/rand"

// RNG is the randomness source for every probabilistic roll in a battle:
// accuracy, critical hits, secondary status chances, paralysis/confusion
// checks, thaw checks and status durations. Injecting it keeps a fixed seed
// reproducing an identical battle log.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded math/rand source. Seed 0 is remapped so callers
// can use it as "unset" without degenerating to the zero source.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}
