package sketch

import (
	"math/rand/v2"

	"github.com/matzehuels/winesheet/pkg/canvas"
)

// Renderer issues sketch primitives against a single surface.
// A Renderer is not safe for concurrent use; give each render its own.
type Renderer struct {
	s   canvas.Surface
	rng *rand.Rand
}

// New returns a renderer drawing on s with randomness from rng.
// A nil rng is replaced by one seeded from the runtime's random source.
func New(s canvas.Surface, rng *rand.Rand) *Renderer {
	if rng == nil {
		rng = NewRand(rand.Uint64())
	}
	return &Renderer{s: s, rng: rng}
}

// NewSeeded returns a renderer whose output is fully determined by seed.
func NewSeeded(s canvas.Surface, seed uint64) *Renderer {
	return New(s, NewRand(seed))
}

// NewRand returns the PCG source used for all sketch randomness.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() canvas.Surface { return r.s }

// jitter returns a uniform offset in [-bound, bound).
func (r *Renderer) jitter(bound float64) float64 {
	return (r.rng.Float64()*2 - 1) * bound
}

// intBetween returns a uniform integer in [lo, hi].
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// floatBetween returns a uniform value in [lo, hi).
func floatBetween(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
