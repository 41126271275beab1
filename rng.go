/* ==================================================================================== *\
   rng.go

   A single seedable RNG source, threaded explicitly through every
   component that needs randomness (transition-matrix
   synthesis, overlay node sampling, the task generator's Bernoulli coin
   and destination draw) instead of reaching for the package-level
   math/rand default source, so a whole run is reproducible from one seed.
\* ==================================================================================== */
package surveillance

import (
	"math"
	"math/rand"
)

// RNG wraps a *rand.Rand so every consumer draws from the same seeded
// stream. Build one with NewRNG; the methods are not nil-safe and there
// is no unseeded fallback source.
type RNG struct {
	r *rand.Rand
}

// NewRNG builds a seeded RNG. Two RNGs built from the same seed produce
// identical draw sequences.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0, 1).
func (g *RNG) Float64() float64 { return g.r.Float64() }

// Intn returns a uniform draw in [0, n).
func (g *RNG) Intn(n int) int { return g.r.Intn(n) }

// UniformInt returns a uniform integer draw in [lo, hi] inclusive.
func (g *RNG) UniformInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// NormalPositive draws from N(mean, sigma), rejecting non-positive
// samples and redrawing until one lands above zero.
func (g *RNG) NormalPositive(mean, sigma float64) float64 {
	for {
		v := g.r.NormFloat64()*sigma + mean
		if v > 0 {
			return v
		}
	}
}

// Perm returns a random permutation of [0, n).
func (g *RNG) Perm(n int) []int { return g.r.Perm(n) }

// Geometric draws a success count (>= 1) from a geometric distribution
// with success probability p, truncated to max. Used by the geometric
// transition-group strategy (transition.go).
func (g *RNG) Geometric(p float64, max int) int {
	if p <= 0 {
		return max
	}
	if p >= 1 {
		return 1
	}
	u := g.r.Float64()
	k := int(math.Ceil(math.Log(1-u) / math.Log(1-p)))
	if k < 1 {
		k = 1
	}
	if k > max {
		k = max
	}
	return k
}
