package wavefunction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Mirror rebuilds the full-domain wavefunction from samples integrated
// outward from x = 0 with step h.
//
// Contract:
//   - samples[i] is ψ(i·h); samples[0] sits on the symmetry point.
//   - The mirrored half is emitted first, in increasing x, with the sign
//     flipped for Odd parity; samples[0] is not duplicated.
//   - The result has 2·len(samples)−1 points spanning [−(n−1)h, (n−1)h].
//
// Complexity: O(n) time and space.
func Mirror(samples []float64, h float64, parity Parity) []Point {
	var n = len(samples)
	if n == 0 {
		return nil
	}

	var sign = 1.0
	if parity == Odd {
		sign = -1.0
	}

	var (
		out = make([]Point, 0, 2*n-1)
		i   int
	)
	// Stage 1: negative half, far end first.
	for i = n - 1; i >= 1; i-- {
		out = append(out, Point{X: -float64(i) * h, Psi: sign * samples[i]})
	}
	// Stage 2: computed half, origin first.
	for i = 0; i < n; i++ {
		out = append(out, Point{X: float64(i) * h, Psi: samples[i]})
	}

	return out
}

// Split separates points into parallel position and amplitude slices.
func Split(points []Point) (xs, psi []float64) {
	xs = make([]float64, len(points))
	psi = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		psi[i] = p.Psi
	}

	return xs, psi
}

// Join is the inverse of Split.
//
// Errors: ErrInvalidConfig if the slices differ in length.
func Join(xs, psi []float64) ([]Point, error) {
	if len(xs) != len(psi) {
		return nil, fmt.Errorf("%w: wavefunction: Join got %d positions and %d amplitudes",
			ErrInvalidConfig, len(xs), len(psi))
	}
	out := make([]Point, len(xs))
	for i := range xs {
		out[i] = Point{X: xs[i], Psi: psi[i]}
	}

	return out, nil
}

// Norm returns sqrt(∫ψ² dx) over the points using trapezoidal quadrature.
// Points must be sorted by X; fewer than two points yield 0.
func Norm(points []Point) float64 {
	if len(points) < 2 {
		return 0
	}
	xs, psi := Split(points)
	sq := make([]float64, len(psi))
	floats.MulTo(sq, psi, psi)

	return math.Sqrt(integrate.Trapezoidal(xs, sq))
}

// Normalize returns a copy of points rescaled to unit L² norm.
//
// Errors:
//   - ErrDegenerate if fewer than two points are given, or the norm is zero
//     or not finite.
func Normalize(points []Point) ([]Point, error) {
	var n = Norm(points)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil, ErrDegenerate
	}
	xs, psi := Split(points)
	floats.Scale(1/n, psi)

	return Join(xs, psi)
}

// Nodes counts sign changes of ψ across the points, ignoring samples with
// |ψ| ≤ eps. For a bound state this equals its excitation index.
func Nodes(points []Point, eps float64) int {
	var (
		count int
		prev  float64
	)
	for _, p := range points {
		if math.Abs(p.Psi) <= eps {
			continue
		}
		if prev != 0 && (prev > 0) != (p.Psi > 0) {
			count++
		}
		prev = p.Psi
	}

	return count
}
