// Package potential provides the model potentials used to exercise the
// solvers: the harmonic oscillator, the finite square well approximating a
// box, and the Lennard-Jones pair potential.
//
// Every constructor returns a pure wavefunction.Potential that is safe to
// share between goroutines.
package potential

import (
	"math"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Harmonic returns V(x) = ½·ω²·x². Levels are ω·(n + ½).
func Harmonic(omega float64) wavefunction.Potential {
	k := omega * omega / 2

	return func(x float64) float64 { return k * x * x }
}

// Box returns a square well centered at the origin: 0 for |x| < width/2,
// depth outside. A large depth approximates the infinite well with
// E_n = n²π²/(2·width²).
func Box(width, depth float64) wavefunction.Potential {
	half := width / 2

	return func(x float64) float64 {
		if math.Abs(x) < half {
			return 0
		}

		return depth
	}
}

// LennardJones returns V(r) = 4ε((σ/r)¹² − (σ/r)⁶) for r > 0 and +Inf
// otherwise. The minimum −ε sits at r = 2^{1/6}·σ.
func LennardJones(epsilon, sigma float64) wavefunction.Potential {
	return func(r float64) float64 {
		if r <= 0 {
			return math.Inf(1)
		}
		s6 := math.Pow(sigma/r, 6)

		return 4 * epsilon * (s6*s6 - s6)
	}
}

// LennardJonesMinimum returns the position 2^{1/6}·σ of the well bottom.
func LennardJonesMinimum(sigma float64) float64 {
	return math.Pow(2, 1.0/6) * sigma
}
