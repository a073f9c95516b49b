// Package wavefunction holds the vocabulary shared by every solver in
// github.com/katalvlaran/schrodinger: the potential callback, the parity of
// a bound state, sampled wavefunction points, the Solver capability set and
// the per-pass Iteration record delivered to observer hooks.
//
// Unit convention:
//
//	The time-independent Schrödinger equation is written with mass and ħ
//	absorbed into the units:
//
//	    −ψ''(x) + 2·V(x)·ψ(x) = 2·E·ψ(x)
//
//	so a harmonic potential V(x) = x²/2 has levels E_n = n + ½ and an
//	infinite well of width L has E_n = n²π²/(2L²).
//
// Helpers:
//
//   - Mirror    — rebuild a full-domain wavefunction from a half-domain
//     integration started at x = 0, applying the parity sign.
//   - Normalize — rescale points to unit L² norm (trapezoidal quadrature).
//   - Nodes     — count sign changes, i.e. the excitation index of a state.
//
// Errors:
//
//	Solvers wrap ErrInvalidConfig, ErrNonConvergent and ErrDegenerate with
//	context; match them with errors.Is.
package wavefunction
