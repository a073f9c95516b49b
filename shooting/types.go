package shooting

import (
	"github.com/katalvlaran/schrodinger/finitediff"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Defaults used by DefaultConfig.
const (
	DefaultXMax              = 5.0
	DefaultStepSize          = 1e-3
	DefaultInitialEnergy     = 0.0
	DefaultInitialEnergyStep = 0.1
	DefaultDivergenceCutoff  = 100.0
	DefaultEnergyStepCutoff  = 1e-6

	// DefaultMaxIterations caps the outer energy search when
	// Config.MaxIterations is zero.
	DefaultMaxIterations = 10000
)

// Config holds the parameters of a shooting solve. It is copied into the
// Solver by New; later changes to the caller's value have no effect.
//
// Fields:
//   - XMax              — outer boundary; integration covers [0, XMax].
//   - StepSize          — grid spacing h (> 0).
//   - InitialEnergy     — first trial energy.
//   - InitialEnergyStep — first signed energy increment (≠ 0).
//   - DivergenceCutoff  — |ψ| beyond which a pass is abandoned (> 0, +Inf disables).
//   - Potential         — V(x), must be even for the mirrored result to be valid.
//   - EnergyStepCutoff  — search stops once |step| ≤ this value (≥ 0).
//   - Parity            — Even or Odd solutions.
//   - MaxIterations     — outer pass cap; 0 ⇒ DefaultMaxIterations.
//   - OnIteration       — optional observer, called once per pass.
//
// An EnergyStepCutoff at or above |InitialEnergyStep| is accepted and
// degenerates to a single pass at InitialEnergy.
type Config struct {
	XMax              float64
	StepSize          float64
	InitialEnergy     float64
	InitialEnergyStep float64
	DivergenceCutoff  float64
	Potential         wavefunction.Potential
	EnergyStepCutoff  float64
	Parity            wavefunction.Parity
	MaxIterations     int
	OnIteration       wavefunction.Hook
}

// DefaultConfig returns a Config with the documented defaults and no
// potential; callers must set Potential before calling New.
func DefaultConfig() Config {
	return Config{
		XMax:              DefaultXMax,
		StepSize:          DefaultStepSize,
		InitialEnergy:     DefaultInitialEnergy,
		InitialEnergyStep: DefaultInitialEnergyStep,
		DivergenceCutoff:  DefaultDivergenceCutoff,
		EnergyStepCutoff:  DefaultEnergyStepCutoff,
		Parity:            wavefunction.Even,
	}
}

// Steps returns the number of samples in one full pass: round(XMax/h) + 1.
func (c Config) Steps() int {
	return finitediff.GridSize(c.XMax, c.StepSize)
}
