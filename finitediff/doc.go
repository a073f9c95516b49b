// Package finitediff provides the numerical primitives shared by the
// shooting and matching solvers.
//
// 🚀 What is in here?
//
//	The stationary Schrödinger equation ψ'' = 2(V − E)ψ is discretized on a
//	uniform grid with spacing h using the three-point second difference
//
//	    ψ[i+1] = 2ψ[i] − ψ[i−1] − 2(E − V(x_i))·h²·ψ[i]
//
//	Given two seed samples the recurrence marches the wavefunction one grid
//	point at a time. Marching with −h integrates leftwards; h² is unchanged,
//	so only the position bookkeeping differs.
//
// ✨ Primitives:
//   - Step        — one application of the recurrence.
//   - Advance     — Step + append onto a sample slice.
//   - IsDiverging — |ψ| above a cutoff (NaN counts as diverged).
//   - Sign        — ±1 memory of the runaway direction.
//   - GridSize    — number of samples in one pass: round(length/h) + 1.
//
// Overflow is not an error: a trial energy far from any eigenvalue simply
// drives |ψ| past the divergence cutoff and the caller stops integrating.
package finitediff
