package variational

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Solver minimizes ⟨H⟩(α) over a trial family. It owns scratch buffers and
// a random stream; a Solver must not be used from several goroutines at
// once.
type Solver struct {
	cfg    Config
	family Family

	// Grid and scratch, sized once by New.
	xs      []float64 // grid positions, len n
	v       []float64 // V(x_i), len n
	psi     []float64 // ψ on the grid extended by one point per side, len n+2
	hpsi    []float64 // ψ·(−½ψ'') + V·ψ², len n
	density []float64 // ψ², len n

	alpha      float64 // best α, 0 before the scan
	energy     float64 // ⟨H⟩ at alpha, +Inf before the scan
	spread     float64 // current δ
	rejections int     // consecutive rejected proposals
	proposals  int     // Monte-Carlo proposals since Reset
	evals      int     // notified ⟨H⟩ evaluations since Reset
	scanned    bool
	rng        *rand.Rand
}

var _ wavefunction.Solver = (*Solver)(nil)

// New validates cfg, samples the potential on the grid and returns a Solver
// with no estimate yet.
//
// Errors: wavefunction.ErrInvalidConfig.
func New(cfg Config) (*Solver, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	var n = cfg.Steps()
	s := &Solver{
		cfg:     cfg,
		family:  cfg.Family,
		xs:      make([]float64, n),
		v:       make([]float64, n),
		psi:     make([]float64, n+2),
		hpsi:    make([]float64, n),
		density: make([]float64, n),
	}
	if s.family == nil {
		s.family = Gaussian{}
	}
	for i := range s.xs {
		s.xs[i] = cfg.X(i)
		s.v[i] = cfg.Potential(s.xs[i])
	}
	s.Reset()

	return s, nil
}

// Reset discards the estimate and rewinds the random stream to Seed.
func (s *Solver) Reset() {
	s.alpha = 0
	s.energy = math.Inf(1)
	s.spread = s.cfg.InitialSpread
	s.rejections = 0
	s.proposals = 0
	s.evals = 0
	s.scanned = false
	s.rng = rngFromSeed(s.cfg.Seed)
}

// Solve runs the scan (once per Reset), then Monte-Carlo refinement until
// the stopping rule holds, then the optional polish.
//
// Errors:
//   - wavefunction.ErrDegenerate if no scanned α yields a finite ⟨H⟩.
//   - wavefunction.ErrNonConvergent if StepCutoff > 0 and the proposal
//     budget runs out first. Energy and Alpha keep the best estimate.
func (s *Solver) Solve() error {
	// Stage 1: coarse scan.
	if !s.scanned {
		if err := s.scan(); err != nil {
			return err
		}
	}

	// Stage 2: Monte-Carlo refinement.
	var (
		budget = s.cfg.Iterations
		cut    = s.cfg.StepCutoff
	)
	if budget == 0 {
		budget = DefaultIterations
	}
	for cut == 0 || s.spread > cut {
		if s.proposals >= budget {
			if cut > 0 {
				return fmt.Errorf("%w: variational: %d proposals, spread %g still above cutoff %g",
					wavefunction.ErrNonConvergent, s.proposals, s.spread, cut)
			}
			break
		}
		s.propose()
	}

	// Stage 3: polish.
	if s.cfg.Polish {
		s.polish()
	}

	return nil
}

// scan evaluates ScanPoints log-spaced α and keeps the lowest ⟨H⟩.
func (s *Solver) scan() error {
	var alphas = make([]float64, s.cfg.ScanPoints)
	if len(alphas) == 1 {
		alphas[0] = s.cfg.AlphaMin
	} else {
		floats.LogSpan(alphas, s.cfg.AlphaMin, s.cfg.AlphaMax)
	}

	for _, a := range alphas {
		e := s.evaluate(a)
		if e < s.energy {
			s.alpha, s.energy = a, e
		}
		s.notify(e)
	}
	if math.IsInf(s.energy, 1) {
		return fmt.Errorf("%w: variational: no finite energy for α in [%g, %g]",
			wavefunction.ErrDegenerate, s.cfg.AlphaMin, s.cfg.AlphaMax)
	}
	s.scanned = true

	return nil
}

// propose draws one candidate α and applies the acceptance rule.
func (s *Solver) propose() {
	var (
		candidate = s.clamp(perturb(s.alpha, s.spread, s.rng))
		e         = s.evaluate(candidate)
	)
	s.proposals++

	if e < s.energy {
		s.alpha, s.energy = candidate, e
		s.rejections = 0
	} else {
		s.rejections++
		if s.rejections >= s.cfg.Patience {
			s.spread /= 2
			s.rejections = 0
		}
	}
	s.notify(e)
}

// clamp keeps α inside [AlphaMin, AlphaMax].
func (s *Solver) clamp(alpha float64) float64 {
	return math.Min(math.Max(alpha, s.cfg.AlphaMin), s.cfg.AlphaMax)
}

// polish runs Nelder–Mead on log α from the current best. A result that
// does not improve the estimate is dropped.
func (s *Solver) polish() {
	problem := optimize.Problem{
		Func: func(y []float64) float64 {
			return s.evaluate(s.clamp(math.Exp(y[0])))
		},
	}
	settings := &optimize.Settings{FuncEvaluations: polishEvaluations}

	// A limit status still reports the best location reached.
	result, _ := optimize.Minimize(problem, []float64{math.Log(s.alpha)}, settings, &optimize.NelderMead{})
	if result == nil || len(result.X) != 1 {
		return
	}
	if result.F < s.energy {
		s.alpha, s.energy = s.clamp(math.Exp(result.X[0])), result.F
	}
}

func (s *Solver) notify(e float64) {
	s.cfg.OnIteration.Notify(wavefunction.Iteration{
		Pass:    s.evals,
		Energy:  s.energy,
		Step:    s.spread,
		Signal:  e,
		Samples: len(s.xs),
	})
	s.evals++
}

// Expectation returns ⟨H⟩(α) on the configured grid, or +Inf when α is not
// a finite positive number or the trial function vanishes on the grid.
func (s *Solver) Expectation(alpha float64) float64 {
	return s.evaluate(alpha)
}

func (s *Solver) evaluate(alpha float64) float64 {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return math.Inf(1)
	}

	var (
		n  = len(s.xs)
		h  = s.cfg.StepSize
		h2 = h * h
		p  float64
		i  int
	)

	// Stage 1: ψ on the interior grid. Walls and ghost points stay 0, so
	// ψ'' at the first and last interior samples sees ψ(XMin) = ψ(XMax) = 0.
	s.psi[0], s.psi[1], s.psi[n], s.psi[n+1] = 0, 0, 0, 0
	for i = 2; i < n; i++ {
		s.psi[i] = s.family.Eval(s.cfg.X(i-1), alpha)
	}

	// Stage 2: integrands. V·ψ² is skipped where ψ = 0 so walls with
	// V = +Inf contribute nothing.
	for i = 0; i < n; i++ {
		p = s.psi[i+1]
		s.density[i] = p * p
		s.hpsi[i] = -0.5 * p * (s.psi[i] - 2*p + s.psi[i+2]) / h2
		if p != 0 {
			s.hpsi[i] += s.v[i] * p * p
		}
	}

	// Stage 3: quadrature. With zero walls every trapezoidal weight is h, so
	// the ratio is ψᵀHψ/ψᵀψ. A cusp's ψ'' spike must carry weight h, so no
	// Simpson here.
	var (
		norm = integrate.Trapezoidal(s.xs, s.density)
		e    = integrate.Trapezoidal(s.xs, s.hpsi) / norm
	)
	if !(norm > 0) || math.IsNaN(e) || math.IsInf(e, 0) {
		return math.Inf(1)
	}

	return e
}

// Energy returns the best ⟨H⟩ found so far, +Inf before the first Solve.
func (s *Solver) Energy() float64 { return s.energy }

// CurrentEnergy is an alias of Energy.
func (s *Solver) CurrentEnergy() float64 { return s.energy }

// Alpha returns the minimizing α found so far, 0 before the first Solve.
// It always lies in [AlphaMin, AlphaMax].
func (s *Solver) Alpha() float64 { return s.alpha }

// Spread returns the current Monte-Carlo spread δ.
func (s *Solver) Spread() float64 { return s.spread }

// Iterations returns the number of Monte-Carlo proposals since the last
// Reset.
func (s *Solver) Iterations() int { return s.proposals }

// Evaluations returns the number of scan and proposal evaluations since the
// last Reset; it equals the number of OnIteration calls.
func (s *Solver) Evaluations() int { return s.evals }

// Family returns the trial family in use.
func (s *Solver) Family() Family { return s.family }

// Config returns a copy of the solver configuration.
func (s *Solver) Config() Config { return s.cfg }

// Points returns the minimizing trial function on the grid with zero walls,
// normalized to unit L² norm. It returns nil before the first Solve.
func (s *Solver) Points() []wavefunction.Point {
	if s.alpha == 0 {
		return nil
	}

	var (
		last = len(s.xs) - 1
		pts  = make([]wavefunction.Point, len(s.xs))
	)
	for i, x := range s.xs {
		pts[i] = wavefunction.Point{X: x}
		if i > 0 && i < last {
			pts[i].Psi = s.family.Eval(x, s.alpha)
		}
	}
	if norm, err := wavefunction.Normalize(pts); err == nil {
		return norm
	}

	return pts
}
