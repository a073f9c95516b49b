package shooting

import (
	"fmt"
	"math"

	"github.com/katalvlaran/schrodinger/finitediff"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Solver looks for a bound state of the configured parity with the
// shooting method. It owns its configuration copy and sample buffer; a
// Solver must not be used from several goroutines at once.
type Solver struct {
	cfg Config

	energy   float64   // current trial energy
	step     float64   // signed energy step; sign flips encode bisection direction
	samples  []float64 // ψ(i·h), i = 0 … len−1
	lastSign float64   // sign of the previous terminal sample, 0 before the first pass
	passes   int       // integration passes performed by Solve
	diverged bool      // whether the latest pass stopped on the divergence cutoff
}

var _ wavefunction.Solver = (*Solver)(nil)

// New validates cfg and returns a Solver in its initial state:
// energy = InitialEnergy, step = InitialEnergyStep, no samples.
//
// Errors: wavefunction.ErrInvalidConfig (wrapped with the offending field).
func New(cfg Config) (*Solver, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	s := &Solver{cfg: cfg}
	s.Reset()

	return s, nil
}

// Reset restores the state New produced, keeping the configuration.
func (s *Solver) Reset() {
	s.energy = s.cfg.InitialEnergy
	s.step = s.cfg.InitialEnergyStep
	s.samples = make([]float64, 0, s.cfg.Steps())
	s.lastSign = 0
	s.passes = 0
	s.diverged = false
}

// Solve runs the energy search until |step| ≤ EnergyStepCutoff.
//
// Algorithm (per outer pass):
//  1. Integrate a fresh trial wavefunction at the current energy.
//  2. If |step| ≤ cutoff, stop: the current energy is the result.
//  3. If the terminal sample's sign differs from the previous pass, an
//     eigenvalue lies between the last two energies: step = −step/2.
//  4. energy += step; remember the terminal sign.
//
// Errors: wavefunction.ErrNonConvergent when MaxIterations passes complete
// without meeting the cutoff. The state reached so far stays readable.
//
// Solve continues from the current state; call Reset first to repeat a
// search from InitialEnergy.
func (s *Solver) Solve() error {
	var (
		limit = s.cfg.MaxIterations
		cut   = s.cfg.EnergyStepCutoff
		last  float64
		it    wavefunction.Iteration
	)
	if limit == 0 {
		limit = DefaultMaxIterations
	}

	for {
		s.compute()
		s.passes++
		last = s.samples[len(s.samples)-1]
		it = wavefunction.Iteration{
			Pass:     s.passes - 1,
			Energy:   s.energy,
			Step:     s.step,
			Signal:   last,
			Samples:  len(s.samples),
			Diverged: s.diverged,
		}
		s.cfg.OnIteration.Notify(it)

		if math.Abs(s.step) <= cut {
			return nil
		}

		// Bracket crossed: halve and reverse.
		if last*s.lastSign < 0 {
			s.step = -s.step / 2
		}
		s.energy += s.step
		s.lastSign = finitediff.Sign(last)

		if s.passes >= limit {
			return fmt.Errorf("%w: shooting: %d passes, |energy step| %g still above cutoff %g",
				wavefunction.ErrNonConvergent, s.passes, math.Abs(s.step), cut)
		}
	}
}

// compute integrates the trial wavefunction for the current energy. It stops
// after Steps() samples or as soon as the latest sample diverges.
func (s *Solver) compute() {
	s.reset()

	var (
		steps = s.cfg.Steps()
		h     = s.cfg.StepSize
		n     int
	)
	s.diverged = false
	for n = len(s.samples); n < steps; n = len(s.samples) {
		if finitediff.IsDiverging(s.samples[n-1], s.cfg.DivergenceCutoff) {
			s.diverged = true
			break
		}
		s.samples = finitediff.Advance(s.samples, float64(n-1)*h, s.energy, h, s.cfg.Potential)
	}
}

// reset seeds the boundary samples at x = 0 according to parity.
func (s *Solver) reset() {
	s.samples = s.samples[:0]
	switch s.cfg.Parity {
	case wavefunction.Odd:
		s.samples = append(s.samples, 0, s.cfg.StepSize)
	default:
		s.samples = append(s.samples, 1, 1)
	}
}

// Energy returns the current trial energy; after a successful Solve it is
// the eigen-energy to within EnergyStepCutoff.
func (s *Solver) Energy() float64 { return s.energy }

// EnergyStep returns the current signed energy step.
func (s *Solver) EnergyStep() float64 { return s.step }

// Iterations returns the number of integration passes Solve has run since
// the last Reset.
func (s *Solver) Iterations() int { return s.passes }

// Diverged reports whether the latest pass was cut short by the divergence
// cutoff.
func (s *Solver) Diverged() bool { return s.diverged }

// Config returns a copy of the solver configuration.
func (s *Solver) Config() Config { return s.cfg }

// Samples returns a copy of the half-domain samples ψ(i·h) of the latest
// pass, starting at x = 0.
func (s *Solver) Samples() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)

	return out
}

// Points returns the full-domain wavefunction: the computed half mirrored
// about the origin (sign-flipped for Odd parity) followed by the computed
// half, in increasing x.
func (s *Solver) Points() []wavefunction.Point {
	return wavefunction.Mirror(s.samples, s.cfg.StepSize, s.cfg.Parity)
}
