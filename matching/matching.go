package matching

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/schrodinger/finitediff"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// joinTol decides when the right branch value at the join is too close to
// zero to carry the rescale; the slope ratio is used instead.
const joinTol = 1e-12

// Solver looks for a bound state on [XMin, XMax] with the matching method.
type Solver struct {
	cfg Config

	energy   float64
	step     float64
	left     []float64 // ψ at global index i, i = 0 … m+1
	right    []float64 // ψ at global index n−1−j, j = 0 … n−m
	mismatch float64   // normalized Wronskian of the latest pass
	lastSign float64
	passes   int
	rescaled bool // whether the latest pass rescaled a branch
}

var _ wavefunction.Solver = (*Solver)(nil)

// New validates cfg and returns a Solver at InitialEnergy.
//
// Errors: wavefunction.ErrInvalidConfig, including XMax ≤ XMin and a
// MatchIndex outside [1, Steps()−2].
func New(cfg Config) (*Solver, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	s := &Solver{cfg: cfg}
	s.Reset()

	return s, nil
}

// Reset restores the freshly constructed state.
func (s *Solver) Reset() {
	var n = s.cfg.Steps()
	s.energy = s.cfg.InitialEnergy
	s.step = s.cfg.InitialEnergyStep
	s.left = make([]float64, 0, s.cfg.MatchIndex+2)
	s.right = make([]float64, 0, n-s.cfg.MatchIndex+1)
	s.mismatch = 0
	s.lastSign = 0
	s.passes = 0
	s.rescaled = false
}

// Solve runs the energy search until |step| ≤ EnergyStepCutoff.
//
// Each pass integrates both branches at the current energy and evaluates
// the normalized Wronskian W at the join. A sign change of W relative to
// the previous pass halves and reverses the step; the energy then advances
// by the step.
//
// Errors: wavefunction.ErrNonConvergent after MaxIterations passes.
func (s *Solver) Solve() error {
	var (
		limit = s.cfg.MaxIterations
		cut   = s.cfg.EnergyStepCutoff
	)
	if limit == 0 {
		limit = DefaultMaxIterations
	}

	for {
		s.compute()
		s.passes++
		s.cfg.OnIteration.Notify(wavefunction.Iteration{
			Pass:     s.passes - 1,
			Energy:   s.energy,
			Step:     s.step,
			Signal:   s.mismatch,
			Samples:  len(s.left) + len(s.right),
			Diverged: s.rescaled,
		})

		if math.Abs(s.step) <= cut {
			return nil
		}
		if s.mismatch*s.lastSign < 0 {
			s.step = -s.step / 2
		}
		s.energy += s.step
		s.lastSign = finitediff.Sign(s.mismatch)

		if s.passes >= limit {
			return fmt.Errorf("%w: matching: %d passes, |energy step| %g still above cutoff %g",
				wavefunction.ErrNonConvergent, s.passes, math.Abs(s.step), cut)
		}
	}
}

// compute integrates both branches for the current energy and updates the
// mismatch.
func (s *Solver) compute() {
	var (
		n = s.cfg.Steps()
		m = s.cfg.MatchIndex
		h = s.cfg.StepSize
	)
	s.rescaled = false

	// Stage 1: left branch, XMin → index m+1.
	s.left = append(s.left[:0], 0, h)
	for len(s.left) < m+2 {
		s.left = finitediff.Advance(s.left, s.cfg.X(len(s.left)-1), s.energy, h, s.cfg.Potential)
		s.tame(s.left)
	}

	// Stage 2: right branch, XMax → index m−1, stepping with −h.
	s.right = append(s.right[:0], 0, h)
	for len(s.right) < n-m+1 {
		x := s.cfg.XMax - float64(len(s.right)-1)*h
		s.right = finitediff.Advance(s.right, x, s.energy, -h, s.cfg.Potential)
		s.tame(s.right)
	}

	// Stage 3: compare at the join.
	s.mismatch = s.wronskian()
}

// tame rescales branch when its newest sample passes the divergence cutoff.
func (s *Solver) tame(branch []float64) {
	var last = branch[len(branch)-1]
	if !finitediff.IsDiverging(last, s.cfg.DivergenceCutoff) || math.IsNaN(last) || math.IsInf(last, 0) {
		return
	}
	floats.Scale(1/math.Abs(last), branch)
	s.rescaled = true
}

// join returns value and slope of both branches at the match index, the
// right branch expressed in increasing-x orientation.
func (s *Solver) join() (l, dl, r, dr float64) {
	var (
		n  = s.cfg.Steps()
		m  = s.cfg.MatchIndex
		h2 = 2 * s.cfg.StepSize
	)
	l = s.left[m]
	dl = (s.left[m+1] - s.left[m-1]) / h2
	r = s.right[n-1-m]
	// right[n−1−(m+1)] sits at x_{m+1}, right[n−1−(m−1)] at x_{m−1}.
	dr = (s.right[n-2-m] - s.right[n-m]) / h2

	return l, dl, r, dr
}

// wronskian returns (ψL·ψR' − ψR·ψL') / √((ψL²+ψL'²)(ψR²+ψR'²)).
func (s *Solver) wronskian() float64 {
	l, dl, r, dr := s.join()
	den := math.Sqrt((l*l + dl*dl) * (r*r + dr*dr))
	if den == 0 || math.IsNaN(den) || math.IsInf(den, 0) {
		return 0
	}

	return (l*dr - r*dl) / den
}

// Energy returns the current trial energy.
func (s *Solver) Energy() float64 { return s.energy }

// EnergyStep returns the current signed energy step.
func (s *Solver) EnergyStep() float64 { return s.step }

// Mismatch returns the normalized Wronskian of the latest pass, in [−1, 1].
// It is close to zero after a converged Solve.
func (s *Solver) Mismatch() float64 { return s.mismatch }

// Iterations returns the number of passes since the last Reset.
func (s *Solver) Iterations() int { return s.passes }

// Config returns a copy of the solver configuration.
func (s *Solver) Config() Config { return s.cfg }

// XMin returns the left domain boundary.
func (s *Solver) XMin() float64 { return s.cfg.XMin }

// XMax returns the right domain boundary.
func (s *Solver) XMax() float64 { return s.cfg.XMax }

// MatchX returns the position of the join.
func (s *Solver) MatchX() float64 { return s.cfg.X(s.cfg.MatchIndex) }

// Points returns Steps() position-ordered points over [XMin, XMax]: the
// left branch up to the join, then the right branch rescaled so both agree
// at the join. Before the first pass it returns nil.
func (s *Solver) Points() []wavefunction.Point {
	if len(s.left) == 0 || len(s.right) == 0 {
		return nil
	}

	var (
		n     = s.cfg.Steps()
		m     = s.cfg.MatchIndex
		scale = s.joinScale()
		out   = make([]wavefunction.Point, n)
		i     int
	)
	for i = 0; i <= m; i++ {
		out[i] = wavefunction.Point{X: s.cfg.X(i), Psi: s.left[i]}
	}
	for i = m + 1; i < n; i++ {
		out[i] = wavefunction.Point{X: s.cfg.X(i), Psi: scale * s.right[n-1-i]}
	}

	return out
}

// joinScale returns the factor applied to the right branch. Values are
// matched when the right branch is clearly non-zero at the join, slopes
// otherwise.
func (s *Solver) joinScale() float64 {
	l, dl, r, dr := s.join()
	peak := math.Max(floats.Max(s.right), -floats.Min(s.right))
	switch {
	case math.Abs(r) > joinTol*peak:
		return l / r
	case dr != 0:
		return dl / dr
	default:
		return 1
	}
}
