package matching

import (
	"math"

	"github.com/katalvlaran/schrodinger/finitediff"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Defaults used by DefaultConfig.
const (
	DefaultXMin              = -5.0
	DefaultXMax              = 5.0
	DefaultStepSize          = 1e-3
	DefaultInitialEnergy     = 0.0
	DefaultInitialEnergyStep = 0.1
	DefaultEnergyStepCutoff  = 1e-6
	DefaultDivergenceCutoff  = 1e12

	// DefaultMaxIterations caps the outer energy search when
	// Config.MaxIterations is zero.
	DefaultMaxIterations = 10000
)

// Config holds the parameters of a matching solve. It is copied into the
// Solver by New.
//
// Fields:
//   - XMin, XMax        — domain; ψ vanishes on both ends (XMax > XMin).
//   - StepSize          — grid spacing h (> 0).
//   - InitialEnergy     — first trial energy.
//   - InitialEnergyStep — first signed energy increment (≠ 0).
//   - Potential         — V(x), arbitrary shape.
//   - EnergyStepCutoff  — search stops once |step| ≤ this value (≥ 0).
//   - DivergenceCutoff  — branch magnitude (> 1) that triggers an in-place
//     rescale back to magnitude 1.
//   - MatchIndex        — grid index of the join, in [1, Steps()−2].
//   - MaxIterations     — outer pass cap; 0 ⇒ DefaultMaxIterations.
//   - OnIteration       — optional observer, called once per pass.
type Config struct {
	XMin              float64
	XMax              float64
	StepSize          float64
	InitialEnergy     float64
	InitialEnergyStep float64
	Potential         wavefunction.Potential
	EnergyStepCutoff  float64
	DivergenceCutoff  float64
	MatchIndex        int
	MaxIterations     int
	OnIteration       wavefunction.Hook
}

// DefaultConfig returns a Config on [−5, 5] joining at one third of the
// domain. Potential is left nil.
func DefaultConfig() Config {
	c := Config{
		XMin:              DefaultXMin,
		XMax:              DefaultXMax,
		StepSize:          DefaultStepSize,
		InitialEnergy:     DefaultInitialEnergy,
		InitialEnergyStep: DefaultInitialEnergyStep,
		EnergyStepCutoff:  DefaultEnergyStepCutoff,
		DivergenceCutoff:  DefaultDivergenceCutoff,
	}
	c.MatchIndex = c.IndexAt(c.XMin + (c.XMax-c.XMin)/3)

	return c
}

// Steps returns the number of grid points on [XMin, XMax]: round(L/h) + 1.
func (c Config) Steps() int {
	return finitediff.GridSize(c.XMax-c.XMin, c.StepSize)
}

// IndexAt returns the grid index nearest to x. It does not clamp.
func (c Config) IndexAt(x float64) int {
	return int(math.Round((x - c.XMin) / c.StepSize))
}

// X returns the position of grid index i.
func (c Config) X(i int) float64 {
	return c.XMin + float64(i)*c.StepSize
}
