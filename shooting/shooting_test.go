package shooting_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schrodinger/potential"
	"github.com/katalvlaran/schrodinger/shooting"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

const (
	// boxWidth is the width L of the square well used across tests.
	boxWidth = 1.0
	// boxDepth approximates an infinite wall while keeping h²·V small.
	boxDepth = 1e5
	// epsHarmonic bounds the O(h²) discretization error at h = 1e-3.
	epsHarmonic = 1e-4
)

func harmonic(x float64) float64 { return x * x / 2 }

var box = potential.Box(boxWidth, boxDepth)

// finiteWellLevel solves the transcendental finite-well condition for the
// lowest even (k·tan(ka) = κ) or odd (−k·cot(ka) = κ) level by bisection.
func finiteWellLevel(t *testing.T, parity wavefunction.Parity) float64 {
	t.Helper()
	a := boxWidth / 2
	f := func(e float64) float64 {
		k := math.Sqrt(2 * e)
		kappa := math.Sqrt(2 * (boxDepth - e))
		if parity == wavefunction.Odd {
			return -k/math.Tan(k*a) - kappa
		}

		return k*math.Tan(k*a) - kappa
	}
	// Bracket in k·a: (0, π/2) for even, (π/2, π) for odd.
	lo, hi := 1e-9, math.Pi/2-1e-12
	if parity == wavefunction.Odd {
		lo, hi = math.Pi/2+1e-12, math.Pi-1e-12
	}
	el, eh := 0.5*(lo/a)*(lo/a), 0.5*(hi/a)*(hi/a)
	for i := 0; i < 200; i++ {
		mid := (el + eh) / 2
		if f(mid) < 0 {
			el = mid
		} else {
			eh = mid
		}
	}

	return (el + eh) / 2
}

func harmonicConfig(p wavefunction.Parity) shooting.Config {
	cfg := shooting.DefaultConfig()
	cfg.Potential = harmonic
	cfg.Parity = p

	return cfg
}

func mustSolve(t *testing.T, cfg shooting.Config) *shooting.Solver {
	t.Helper()
	s, err := shooting.New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Solve())

	return s
}

// TestSolve_HarmonicEven finds E₀ = ½ for V = x²/2.
func TestSolve_HarmonicEven(t *testing.T) {
	s := mustSolve(t, harmonicConfig(wavefunction.Even))
	assert.InDelta(t, 0.5, s.Energy(), epsHarmonic)
	assert.LessOrEqual(t, math.Abs(s.EnergyStep()), shooting.DefaultEnergyStepCutoff)
}

// TestSolve_HarmonicOdd finds E₁ = 3/2 for V = x²/2.
func TestSolve_HarmonicOdd(t *testing.T) {
	s := mustSolve(t, harmonicConfig(wavefunction.Odd))
	assert.InDelta(t, 1.5, s.Energy(), epsHarmonic)
}

// TestSolve_SquareWell runs the deep-well scenario: L = 1, h = 1.15·L/10⁴,
// initial energy 0, step 0.1, cutoff 1e-6.
func TestSolve_SquareWell(t *testing.T) {
	cfg := shooting.Config{
		XMax:              0.55,
		StepSize:          boxWidth * 1.15 / 10000,
		InitialEnergy:     0,
		InitialEnergyStep: 0.1,
		DivergenceCutoff:  100,
		Potential:         box,
		EnergyStepCutoff:  1e-6,
		Parity:            wavefunction.Even,
	}
	even := mustSolve(t, cfg)

	cfg.Parity = wavefunction.Odd
	odd := mustSolve(t, cfg)

	// Against the exact finite-depth well (wall discretization ~h/2).
	assert.InDelta(t, finiteWellLevel(t, wavefunction.Even), even.Energy(), 5e-3)
	assert.InDelta(t, finiteWellLevel(t, wavefunction.Odd), odd.Energy(), 2e-2)

	// Against the infinite well E₁ = π²/(2L²): the finite depth lowers it by <2%.
	infinite := math.Pi * math.Pi / (2 * boxWidth * boxWidth)
	assert.InEpsilon(t, infinite, even.Energy(), 0.02)
	assert.InEpsilon(t, 4*infinite, odd.Energy(), 0.02)
	assert.Less(t, even.Energy(), infinite, "finite walls lower the level")
}

// TestSolve_StepMonotone checks that |step| never grows and that the loop
// stops on the first pass whose |step| ≤ cutoff.
func TestSolve_StepMonotone(t *testing.T) {
	var passes []wavefunction.Iteration
	cfg := harmonicConfig(wavefunction.Even)
	cfg.OnIteration = func(it wavefunction.Iteration) { passes = append(passes, it) }
	s := mustSolve(t, cfg)

	require.NotEmpty(t, passes)
	require.Len(t, passes, s.Iterations())
	cut := cfg.EnergyStepCutoff
	for i := 1; i < len(passes); i++ {
		assert.LessOrEqual(t, math.Abs(passes[i].Step), math.Abs(passes[i-1].Step), "pass %d", i)
		assert.Equal(t, i, passes[i].Pass)
	}
	for i := 0; i < len(passes)-1; i++ {
		assert.Greater(t, math.Abs(passes[i].Step), cut, "pass %d must not have met the cutoff", i)
	}
	last := passes[len(passes)-1]
	assert.LessOrEqual(t, math.Abs(last.Step), cut)
	assert.Equal(t, s.Energy(), last.Energy)
}

// TestSeeds_Parity checks the (1,1) and (0,h) boundary seeds and the sample
// count of an undiverged pass.
func TestSeeds_Parity(t *testing.T) {
	for _, p := range []wavefunction.Parity{wavefunction.Even, wavefunction.Odd} {
		t.Run(p.String(), func(t *testing.T) {
			cfg := shooting.DefaultConfig()
			cfg.Potential = func(float64) float64 { return 0 }
			cfg.XMax = 1
			cfg.StepSize = 0.01
			cfg.DivergenceCutoff = math.Inf(1)
			cfg.EnergyStepCutoff = 1 // ≥ initial step: single pass at E = 0
			s := mustSolve(t, cfg)

			require.Equal(t, 1, s.Iterations())
			samples := s.Samples()
			require.Len(t, samples, cfg.Steps())
			assert.Equal(t, 101, len(samples), "round(1/0.01)+1")
			if p == wavefunction.Even {
				assert.Equal(t, []float64{1, 1}, samples[:2])
				assert.InDelta(t, 1.0, samples[len(samples)-1], 1e-12)
			} else {
				assert.Equal(t, []float64{0, 0.01}, samples[:2])
				assert.InDelta(t, 1.0, samples[len(samples)-1], 1e-9)
			}
		})
	}
}

// TestPoints_Symmetry verifies ψ(−x) = ±ψ(x) on every sampled pair.
func TestPoints_Symmetry(t *testing.T) {
	for _, p := range []wavefunction.Parity{wavefunction.Even, wavefunction.Odd} {
		t.Run(p.String(), func(t *testing.T) {
			s := mustSolve(t, harmonicConfig(p))
			pts := s.Points()
			n := len(s.Samples())
			require.Len(t, pts, 2*n-1)

			sign := 1.0
			if p == wavefunction.Odd {
				sign = -1.0
			}
			for i := range pts {
				j := len(pts) - 1 - i
				assert.InDelta(t, -pts[i].X, pts[j].X, 1e-9)
				assert.Equal(t, sign*pts[i].Psi, pts[j].Psi)
			}
			for i := 1; i < len(pts); i++ {
				assert.Greater(t, pts[i].X, pts[i-1].X, "positions increase")
			}
		})
	}
}

// TestPoints_Nodes checks the excitation index inside the classically
// relevant region (the divergent tail is excluded).
func TestPoints_Nodes(t *testing.T) {
	inner := func(pts []wavefunction.Point) []wavefunction.Point {
		var out []wavefunction.Point
		for _, p := range pts {
			if math.Abs(p.X) < 3 {
				out = append(out, p)
			}
		}

		return out
	}
	even := mustSolve(t, harmonicConfig(wavefunction.Even))
	odd := mustSolve(t, harmonicConfig(wavefunction.Odd))
	assert.Equal(t, 0, wavefunction.Nodes(inner(even.Points()), 0))
	assert.Equal(t, 1, wavefunction.Nodes(inner(odd.Points()), 0))
}

// TestReset_Idempotent reproduces the same energy after Reset.
func TestReset_Idempotent(t *testing.T) {
	s := mustSolve(t, harmonicConfig(wavefunction.Even))
	first := s.Energy()
	passes := s.Iterations()

	s.Reset()
	assert.Equal(t, shooting.DefaultInitialEnergy, s.Energy())
	assert.Equal(t, 0, s.Iterations())
	assert.Empty(t, s.Samples())

	require.NoError(t, s.Solve())
	assert.Equal(t, first, s.Energy())
	assert.Equal(t, passes, s.Iterations())
}

// TestSolve_NonConvergent hits the iteration cap.
func TestSolve_NonConvergent(t *testing.T) {
	cfg := harmonicConfig(wavefunction.Even)
	cfg.MaxIterations = 3
	s, err := shooting.New(cfg)
	require.NoError(t, err)

	err = s.Solve()
	assert.ErrorIs(t, err, wavefunction.ErrNonConvergent)
	assert.Equal(t, 3, s.Iterations())

	cfg.MaxIterations = 50
	cfg.EnergyStepCutoff = 0 // |step| never reaches 0
	s, err = shooting.New(cfg)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Solve(), wavefunction.ErrNonConvergent)
}

// TestCompute_DivergesEarly feeds an energy far below the spectrum.
func TestCompute_DivergesEarly(t *testing.T) {
	cfg := harmonicConfig(wavefunction.Even)
	cfg.InitialEnergy = -10
	cfg.EnergyStepCutoff = 1 // single pass
	s := mustSolve(t, cfg)

	assert.True(t, s.Diverged())
	assert.Less(t, len(s.Samples()), cfg.Steps())
	last := s.Samples()[len(s.Samples())-1]
	assert.Greater(t, math.Abs(last), cfg.DivergenceCutoff)
}

// TestNew_InvalidConfig covers every validation stage.
func TestNew_InvalidConfig(t *testing.T) {
	cases := map[string]func(*shooting.Config){
		"nil potential":     func(c *shooting.Config) { c.Potential = nil },
		"zero step":         func(c *shooting.Config) { c.StepSize = 0 },
		"negative step":     func(c *shooting.Config) { c.StepSize = -1e-3 },
		"nan step":          func(c *shooting.Config) { c.StepSize = math.NaN() },
		"zero xmax":         func(c *shooting.Config) { c.XMax = 0 },
		"xmax below step":   func(c *shooting.Config) { c.XMax = 1e-4 },
		"inf energy":        func(c *shooting.Config) { c.InitialEnergy = math.Inf(1) },
		"zero energy step":  func(c *shooting.Config) { c.InitialEnergyStep = 0 },
		"negative cutoff":   func(c *shooting.Config) { c.EnergyStepCutoff = -1 },
		"zero divergence":   func(c *shooting.Config) { c.DivergenceCutoff = 0 },
		"unknown parity":    func(c *shooting.Config) { c.Parity = wavefunction.Parity(9) },
		"negative max iter": func(c *shooting.Config) { c.MaxIterations = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := harmonicConfig(wavefunction.Even)
			mutate(&cfg)
			s, err := shooting.New(cfg)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, wavefunction.ErrInvalidConfig)
		})
	}
}

// TestNew_ConfigCopied ensures later caller mutation does not leak in.
func TestNew_ConfigCopied(t *testing.T) {
	cfg := harmonicConfig(wavefunction.Even)
	s, err := shooting.New(cfg)
	require.NoError(t, err)
	cfg.StepSize = 1
	assert.Equal(t, shooting.DefaultStepSize, s.Config().StepSize)
}

// TestSolve_ParallelInstances runs independent solvers concurrently and
// compares with sequential results.
func TestSolve_ParallelInstances(t *testing.T) {
	parities := []wavefunction.Parity{wavefunction.Even, wavefunction.Odd}
	got := make([]float64, len(parities))

	var wg sync.WaitGroup
	for i, p := range parities {
		wg.Add(1)
		go func(i int, p wavefunction.Parity) {
			defer wg.Done()
			s, err := shooting.New(harmonicConfig(p))
			if err != nil {
				return
			}
			if err = s.Solve(); err == nil {
				got[i] = s.Energy()
			}
		}(i, p)
	}
	wg.Wait()

	for i, p := range parities {
		assert.Equal(t, mustSolve(t, harmonicConfig(p)).Energy(), got[i], "parity %v", p)
	}
}

// TestSolver_Interface asserts the capability set.
func TestSolver_Interface(t *testing.T) {
	s, err := shooting.New(harmonicConfig(wavefunction.Even))
	require.NoError(t, err)
	var _ wavefunction.Solver = s
}
