package variational

import (
	"github.com/katalvlaran/schrodinger/finitediff"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Defaults used by DefaultConfig.
const (
	DefaultXMin          = -5.0
	DefaultXMax          = 5.0
	DefaultStepSize      = 1e-3
	DefaultAlphaMin      = 1e-2
	DefaultAlphaMax      = 1e2
	DefaultScanPoints    = 41
	DefaultInitialSpread = 0.5
	DefaultStepCutoff    = 1e-6
	DefaultPatience      = 20

	// DefaultIterations is the proposal budget used when Config.Iterations
	// is zero.
	DefaultIterations = 10000
)

// polishEvaluations bounds the Nelder–Mead polish.
const polishEvaluations = 200

// Config holds the parameters of a variational solve. It is copied into the
// Solver by New.
//
// Fields:
//   - XMin, XMax     — integration domain (XMax > XMin).
//   - StepSize       — grid spacing h (> 0).
//   - Potential      — V(x).
//   - Family         — trial wavefunctions; nil ⇒ Gaussian{}.
//   - AlphaMin/Max   — scan range for α (0 < AlphaMin ≤ AlphaMax).
//   - ScanPoints     — number of log-spaced scan values (≥ 1).
//   - InitialSpread  — first Monte-Carlo spread δ in log α (> 0).
//   - StepCutoff     — stop once δ ≤ StepCutoff; 0 selects budget mode.
//   - Patience       — consecutive rejections before δ is halved (≥ 1).
//   - Iterations     — proposal budget; 0 ⇒ DefaultIterations.
//   - Seed           — generator seed; 0 ⇒ fixed default.
//   - Polish         — run a Nelder–Mead polish after the Monte-Carlo stage.
//   - OnIteration    — optional observer, called once per scan point and per
//     proposal. Energy is the best estimate, Step the spread δ and Signal
//     the evaluated ⟨H⟩.
type Config struct {
	XMin          float64
	XMax          float64
	StepSize      float64
	Potential     wavefunction.Potential
	Family        Family
	AlphaMin      float64
	AlphaMax      float64
	ScanPoints    int
	InitialSpread float64
	StepCutoff    float64
	Patience      int
	Iterations    int
	Seed          int64
	Polish        bool
	OnIteration   wavefunction.Hook
}

// DefaultConfig returns a Config with a Gaussian family, the documented
// defaults and no potential.
func DefaultConfig() Config {
	return Config{
		XMin:          DefaultXMin,
		XMax:          DefaultXMax,
		StepSize:      DefaultStepSize,
		Family:        Gaussian{},
		AlphaMin:      DefaultAlphaMin,
		AlphaMax:      DefaultAlphaMax,
		ScanPoints:    DefaultScanPoints,
		InitialSpread: DefaultInitialSpread,
		StepCutoff:    DefaultStepCutoff,
		Patience:      DefaultPatience,
	}
}

// Steps returns the number of grid points on [XMin, XMax]: round(L/h) + 1.
func (c Config) Steps() int {
	return finitediff.GridSize(c.XMax-c.XMin, c.StepSize)
}

// X returns the position of grid index i.
func (c Config) X(i int) float64 {
	return c.XMin + float64(i)*c.StepSize
}
