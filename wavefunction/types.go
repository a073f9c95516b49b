package wavefunction

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all solver packages.
var (
	// ErrInvalidConfig is returned when a solver configuration is rejected at
	// construction time (non-positive step, empty domain, bad match index, …).
	ErrInvalidConfig = errors.New("wavefunction: invalid configuration")

	// ErrNonConvergent is returned when a search loop exhausts its iteration
	// cap before its convergence criterion is met.
	ErrNonConvergent = errors.New("wavefunction: search did not converge")

	// ErrDegenerate is returned when a sampled wavefunction cannot be
	// normalized (fewer than two points, or zero norm).
	ErrDegenerate = errors.New("wavefunction: degenerate wavefunction")
)

// Potential is the potential energy V(x). It must be a pure function:
// solvers call it once per grid index per integration pass and may call it
// from several goroutines when independent solvers run in parallel.
type Potential func(x float64) float64

// Parity is the symmetry class of a solution under x → −x.
type Parity int

const (
	// Even solutions satisfy ψ(−x) = ψ(x).
	Even Parity = iota
	// Odd solutions satisfy ψ(−x) = −ψ(x).
	Odd
)

// String implements fmt.Stringer.
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared parities.
func (p Parity) Valid() bool {
	return p == Even || p == Odd
}

// ParseParity converts "even"/"odd" (case-insensitive) into a Parity.
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return Even, fmt.Errorf("parity %q: %w", s, ErrInvalidConfig)
	}
}

// Point is one sample of a wavefunction: amplitude Psi at position X.
type Point struct {
	X   float64
	Psi float64
}

// Solver is the capability set every solver exposes. A caller builds a
// configuration, constructs a solver, calls Solve and reads Energy and
// Points. Reset restores the freshly constructed state so that Solve can be
// repeated from the initial trial energy.
type Solver interface {
	Solve() error
	Energy() float64
	Points() []Point
	Reset()
}

// Iteration describes one outer pass of an energy (or parameter) search.
type Iteration struct {
	// Pass is the zero-based index of the outer pass.
	Pass int
	// Energy is the trial energy (or energy estimate) evaluated in this pass.
	Energy float64
	// Step is the signed search step in effect when the pass was evaluated.
	// A search stops on the first pass whose |Step| is at or below its cutoff.
	Step float64
	// Signal is the quantity whose sign drives the search: the terminal
	// sample for shooting, the normalized Wronskian for matching, the energy
	// estimate for the variational search.
	Signal float64
	// Samples is the number of samples computed in this pass.
	Samples int
	// Diverged reports whether the pass stopped on the divergence cutoff.
	Diverged bool
}

// Hook observes search progress. A nil Hook is never called.
type Hook func(it Iteration)

// Notify calls h with it when h is non-nil.
func (h Hook) Notify(it Iteration) {
	if h != nil {
		h(it)
	}
}
