package shooting

import (
	"fmt"
	"math"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// validate checks a Config before a Solver is built.
//
// Stages:
//  1. Potential present.
//  2. Grid: finite positive step, finite positive XMax, at least two samples.
//  3. Search: finite energies, non-zero initial step, non-negative cutoff.
//  4. Divergence cutoff, parity and iteration cap.
//
// Every failure wraps wavefunction.ErrInvalidConfig.
func validate(c Config) error {
	// Stage 1: the potential is the only mandatory callback.
	if c.Potential == nil {
		return fmt.Errorf("%w: shooting: potential is nil", wavefunction.ErrInvalidConfig)
	}

	// Stage 2: grid.
	if !finite(c.StepSize) || c.StepSize <= 0 {
		return fmt.Errorf("%w: shooting: step size %v must be finite and > 0", wavefunction.ErrInvalidConfig, c.StepSize)
	}
	if !finite(c.XMax) || c.XMax <= 0 {
		return fmt.Errorf("%w: shooting: XMax %v must be finite and > 0", wavefunction.ErrInvalidConfig, c.XMax)
	}
	if c.Steps() < 2 {
		return fmt.Errorf("%w: shooting: XMax %v shorter than one step %v", wavefunction.ErrInvalidConfig, c.XMax, c.StepSize)
	}

	// Stage 3: energy search.
	if !finite(c.InitialEnergy) {
		return fmt.Errorf("%w: shooting: initial energy %v", wavefunction.ErrInvalidConfig, c.InitialEnergy)
	}
	if !finite(c.InitialEnergyStep) || c.InitialEnergyStep == 0 {
		return fmt.Errorf("%w: shooting: initial energy step %v must be finite and non-zero", wavefunction.ErrInvalidConfig, c.InitialEnergyStep)
	}
	if !finite(c.EnergyStepCutoff) || c.EnergyStepCutoff < 0 {
		return fmt.Errorf("%w: shooting: energy step cutoff %v must be finite and >= 0", wavefunction.ErrInvalidConfig, c.EnergyStepCutoff)
	}

	// Stage 4: divergence, parity, cap.
	if math.IsNaN(c.DivergenceCutoff) || c.DivergenceCutoff <= 0 {
		return fmt.Errorf("%w: shooting: divergence cutoff %v must be > 0", wavefunction.ErrInvalidConfig, c.DivergenceCutoff)
	}
	if !c.Parity.Valid() {
		return fmt.Errorf("%w: shooting: unknown parity %v", wavefunction.ErrInvalidConfig, c.Parity)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: shooting: MaxIterations %d cannot be negative", wavefunction.ErrInvalidConfig, c.MaxIterations)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
