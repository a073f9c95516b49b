// Package schrodinger finds bound states of a particle in a one-dimensional
// potential by solving the time-independent Schrödinger equation
//
//	−ψ'' + 2V(x)ψ = 2Eψ
//
// numerically, in units where ħ = m = 1.
//
// 🚀 What is inside?
//
//	Three iterative solvers sharing one finite-difference recurrence:
//		• shooting    — integrate outward from the symmetry point, bisect on
//		                the sign of the terminal sample (even potentials)
//		• matching    — integrate inward from both walls, bisect on the
//		                Wronskian at an interior join (any potential)
//		• variational — minimize ⟨H⟩ over a one-parameter trial family with
//		                a seeded Monte-Carlo search
//
//	plus a direct reference:
//		• spectrum    — diagonalize the same discrete Hamiltonian
//
// ✨ Shared pieces
//
//	wavefunction/ — Potential, Parity, Point, the Solver interface, the
//	                Iteration hook and sentinel errors, point utilities
//	finitediff/   — the recurrence, divergence test and grid sizing
//	potential/    — harmonic, box and Lennard-Jones model potentials
//	config/       — viper loaders for every solver configuration
//
// Every solver follows the same life cycle: build a Config (start from
// DefaultConfig), construct with New (which validates and returns
// wavefunction.ErrInvalidConfig on bad input), call Solve, then read Energy
// and Points. Reset rewinds to the initial trial energy. Every search loop
// is capped and reports wavefunction.ErrNonConvergent instead of spinning.
//
// Nothing here logs; progress is observable through Config.OnIteration.
package schrodinger
