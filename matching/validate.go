package matching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// minSteps is the smallest grid that leaves a valid interior join.
const minSteps = 3

// validate checks a Config before a Solver is built.
//
// Stages:
//  1. Potential present.
//  2. Domain and grid: finite bounds with XMax > XMin, finite positive step,
//     at least three grid points.
//  3. Join: 1 ≤ MatchIndex ≤ Steps()−2.
//  4. Search: finite energies, non-zero initial step, non-negative energy
//     cutoff, divergence cutoff above 1, non-negative iteration cap.
//
// Every failure wraps wavefunction.ErrInvalidConfig.
func validate(c Config) error {
	// Stage 1: potential.
	if c.Potential == nil {
		return fmt.Errorf("%w: matching: potential is nil", wavefunction.ErrInvalidConfig)
	}

	// Stage 2: domain and grid.
	if !finite(c.XMin) || !finite(c.XMax) || c.XMax <= c.XMin {
		return fmt.Errorf("%w: matching: domain [%v, %v] must be finite with XMax > XMin", wavefunction.ErrInvalidConfig, c.XMin, c.XMax)
	}
	if !finite(c.StepSize) || c.StepSize <= 0 {
		return fmt.Errorf("%w: matching: step size %v must be finite and > 0", wavefunction.ErrInvalidConfig, c.StepSize)
	}
	var n = c.Steps()
	if n < minSteps {
		return fmt.Errorf("%w: matching: %d grid points, need at least %d", wavefunction.ErrInvalidConfig, n, minSteps)
	}

	// Stage 3: join must leave one neighbour on each side.
	if c.MatchIndex < 1 || c.MatchIndex > n-2 {
		return fmt.Errorf("%w: matching: match index %d outside [1, %d]", wavefunction.ErrInvalidConfig, c.MatchIndex, n-2)
	}

	// Stage 4: search.
	if !finite(c.InitialEnergy) {
		return fmt.Errorf("%w: matching: initial energy %v", wavefunction.ErrInvalidConfig, c.InitialEnergy)
	}
	if !finite(c.InitialEnergyStep) || c.InitialEnergyStep == 0 {
		return fmt.Errorf("%w: matching: initial energy step %v must be finite and non-zero", wavefunction.ErrInvalidConfig, c.InitialEnergyStep)
	}
	if !finite(c.EnergyStepCutoff) || c.EnergyStepCutoff < 0 {
		return fmt.Errorf("%w: matching: energy step cutoff %v must be finite and >= 0", wavefunction.ErrInvalidConfig, c.EnergyStepCutoff)
	}
	// A rescaled branch restarts at magnitude 1, so the cutoff must exceed it.
	if math.IsNaN(c.DivergenceCutoff) || c.DivergenceCutoff <= 1 {
		return fmt.Errorf("%w: matching: divergence cutoff %v must be > 1", wavefunction.ErrInvalidConfig, c.DivergenceCutoff)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: matching: MaxIterations %d cannot be negative", wavefunction.ErrInvalidConfig, c.MaxIterations)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
