package variational

import (
	"fmt"
	"math"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// minSteps is the smallest grid with an interior point.
const minSteps = 3

// validate checks a Config before a Solver is built.
//
// Stages:
//  1. Potential present.
//  2. Domain and grid: finite bounds with XMax > XMin, finite positive step,
//     at least three grid points.
//  3. Scan: 0 < AlphaMin ≤ AlphaMax, both finite, ScanPoints ≥ 1.
//  4. Refinement: positive spread, non-negative cutoff, Patience ≥ 1,
//     non-negative budget.
//
// Every failure wraps wavefunction.ErrInvalidConfig.
func validate(c Config) error {
	// Stage 1: potential.
	if c.Potential == nil {
		return fmt.Errorf("%w: variational: potential is nil", wavefunction.ErrInvalidConfig)
	}

	// Stage 2: domain and grid.
	if !finite(c.XMin) || !finite(c.XMax) || c.XMax <= c.XMin {
		return fmt.Errorf("%w: variational: domain [%v, %v] must be finite with XMax > XMin", wavefunction.ErrInvalidConfig, c.XMin, c.XMax)
	}
	if !finite(c.StepSize) || c.StepSize <= 0 {
		return fmt.Errorf("%w: variational: step size %v must be finite and > 0", wavefunction.ErrInvalidConfig, c.StepSize)
	}
	if n := c.Steps(); n < minSteps {
		return fmt.Errorf("%w: variational: %d grid points, need at least %d", wavefunction.ErrInvalidConfig, n, minSteps)
	}

	// Stage 3: scan.
	if !finite(c.AlphaMin) || !finite(c.AlphaMax) || c.AlphaMin <= 0 || c.AlphaMax < c.AlphaMin {
		return fmt.Errorf("%w: variational: alpha range [%v, %v] must satisfy 0 < min ≤ max", wavefunction.ErrInvalidConfig, c.AlphaMin, c.AlphaMax)
	}
	if c.ScanPoints < 1 {
		return fmt.Errorf("%w: variational: ScanPoints %d must be >= 1", wavefunction.ErrInvalidConfig, c.ScanPoints)
	}

	// Stage 4: refinement.
	if !finite(c.InitialSpread) || c.InitialSpread <= 0 {
		return fmt.Errorf("%w: variational: initial spread %v must be finite and > 0", wavefunction.ErrInvalidConfig, c.InitialSpread)
	}
	if !finite(c.StepCutoff) || c.StepCutoff < 0 {
		return fmt.Errorf("%w: variational: step cutoff %v must be finite and >= 0", wavefunction.ErrInvalidConfig, c.StepCutoff)
	}
	if c.Patience < 1 {
		return fmt.Errorf("%w: variational: Patience %d must be >= 1", wavefunction.ErrInvalidConfig, c.Patience)
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: variational: Iterations %d cannot be negative", wavefunction.ErrInvalidConfig, c.Iterations)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
