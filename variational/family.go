package variational

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Family is a one-parameter set of trial wavefunctions. Eval returns the
// unnormalized ψ_α(x) for α > 0. Implementations must be pure.
type Family interface {
	Eval(x, alpha float64) float64
}

// Gaussian is ψ_α(x) = exp(−α(x−Center)²). For V = x²/2 it contains the
// exact ground state at α = ½.
type Gaussian struct {
	Center float64
}

// Eval implements Family.
func (g Gaussian) Eval(x, alpha float64) float64 {
	d := x - g.Center

	return math.Exp(-alpha * d * d)
}

// String implements fmt.Stringer.
func (g Gaussian) String() string { return "gaussian" }

// Exponential is ψ_α(x) = exp(−α|x−Center|).
type Exponential struct {
	Center float64
}

// Eval implements Family.
func (e Exponential) Eval(x, alpha float64) float64 {
	return math.Exp(-alpha * math.Abs(x-e.Center))
}

// String implements fmt.Stringer.
func (e Exponential) String() string { return "exponential" }

// Sech is ψ_α(x) = sech(α(x−Center)).
type Sech struct {
	Center float64
}

// Eval implements Family.
func (s Sech) Eval(x, alpha float64) float64 {
	// cosh overflows to +Inf far from the center, giving exactly 0.
	return 1 / math.Cosh(alpha*(x-s.Center))
}

// String implements fmt.Stringer.
func (s Sech) String() string { return "sech" }

// ParseFamily builds a Family from its name ("gaussian", "exponential",
// "sech"; case-insensitive) centered at center.
func ParseFamily(name string, center float64) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gaussian", "":
		return Gaussian{Center: center}, nil
	case "exponential":
		return Exponential{Center: center}, nil
	case "sech":
		return Sech{Center: center}, nil
	default:
		return nil, fmt.Errorf("%w: variational: unknown trial family %q", wavefunction.ErrInvalidConfig, name)
	}
}
