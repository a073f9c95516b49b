// Package variational estimates the ground state of the one-dimensional
// time-independent Schrödinger equation with a one-parameter trial
// wavefunction.
//
// 🚀 How it works
//
//	A Family maps a scale parameter α to a trial function ψ_α. For any α the
//	energy estimate is the Hamiltonian expectation value on the grid
//	[XMin, XMax] with spacing h:
//
//	    ⟨H⟩(α) = (∫ψ·(−½ψ'') dx + ∫V·ψ² dx) / ∫ψ² dx
//
//	ψ is sampled on the interior points and held at 0 on both walls
//	(Dirichlet). ψ'' is the central difference at x−h, x, x+h and the
//	integrals use the trapezoidal rule, so ⟨H⟩ is exactly ψᵀHψ/ψᵀψ for the
//	discrete Hamiltonian the spectrum package diagonalizes. ⟨H⟩(α) therefore
//	never undershoots that Hamiltonian's ground level, whatever weight the
//	trial function carries near the walls.
//
//	Solve minimizes ⟨H⟩ in three stages:
//	  1. Scan: ScanPoints log-spaced α in [AlphaMin, AlphaMax]; keep the best.
//	  2. Monte-Carlo refinement: propose α' = α·exp(δ·(2u−1)) with u uniform
//	     in [0, 1) from a seeded generator, clamp it to [AlphaMin, AlphaMax]
//	     and accept iff ⟨H⟩ decreases.
//	     After Patience consecutive rejections δ is halved.
//	  3. Optional polish: Nelder–Mead on log α, kept only if it improves.
//
// ✨ Stopping
//   - StepCutoff > 0: stop once δ ≤ StepCutoff. Running out of the
//     Iterations budget first returns wavefunction.ErrNonConvergent; the best
//     estimate found so far stays readable.
//   - StepCutoff = 0: run exactly Iterations proposals.
//
// ⚙️ Usage:
//
//	cfg := variational.DefaultConfig()
//	cfg.Potential = func(x float64) float64 { return x * x / 2 }
//	s, err := variational.New(cfg)
//	if err != nil { … }
//	if err = s.Solve(); err != nil { … }
//	fmt.Println(s.Energy(), s.Alpha()) // ≈ 0.5, 0.5
//
// Results are deterministic for a given Seed; Seed 0 selects a fixed
// default stream.
//
// Complexity: O(evaluations · (XMax−XMin)/h) potential and trial-function
// evaluations.
package variational
