package variational

import (
	"math"
	"math/rand"
)

// defaultRNGSeed is the fixed stream used when Config.Seed is 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; every Solver owns its own stream.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// perturb draws a multiplicative proposal α·exp(δ·(2u−1)), u ∈ [0, 1).
// The result stays positive and is symmetric in log α; the Solver clamps
// it to [AlphaMin, AlphaMax].
func perturb(alpha, spread float64, r *rand.Rand) float64 {
	return alpha * math.Exp(spread*(2*r.Float64()-1))
}
