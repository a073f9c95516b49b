package finitediff

import (
	"math"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Step returns ψ[i+1] from ψ[i−1] (prev), ψ[i] (cur), the position x_i, the
// trial energy and the (signed) grid spacing h.
//
// Complexity: O(1), one call of v.
func Step(prev, cur, x, energy, h float64, v wavefunction.Potential) float64 {
	return 2*cur - prev - 2*(energy-v(x))*h*h*cur
}

// Advance appends the next sample to samples and returns the extended slice.
// x is the position of the last sample. samples must hold at least two values.
func Advance(samples []float64, x, energy, h float64, v wavefunction.Potential) []float64 {
	var i = len(samples) - 1

	return append(samples, Step(samples[i-1], samples[i], x, energy, h, v))
}

// IsDiverging reports whether |last| exceeds cutoff. NaN is treated as
// diverged so that overflowed passes terminate.
func IsDiverging(last, cutoff float64) bool {
	if math.IsNaN(last) {
		return true
	}

	return math.Abs(last) > cutoff
}

// Sign returns +1 for v ≥ 0 and −1 otherwise.
func Sign(v float64) float64 {
	if v >= 0 {
		return 1
	}

	return -1
}

// GridSize returns round(length/h) + 1, the number of samples produced by one
// full integration pass over an interval of the given length. It returns 0
// for non-positive h or negative length.
func GridSize(length, h float64) int {
	if h <= 0 || length < 0 || math.IsNaN(length) || math.IsNaN(h) {
		return 0
	}

	return int(math.Round(length/h)) + 1
}
