// Package shooting solves the one-dimensional time-independent Schrödinger
// equation for symmetric potentials with the shooting method.
//
// 🚀 How it works
//
//	A trial wavefunction is seeded at the symmetry point x = 0 according to
//	the requested parity and integrated outward with the finite-difference
//	recurrence up to XMax:
//
//	    Even: ψ[0] = 1, ψ[1] = 1   (non-zero at origin, zero slope)
//	    Odd:  ψ[0] = 0, ψ[1] = h   (zero at origin, unit slope)
//
//	Away from an eigenvalue the solution runs off to ±∞ near the boundary;
//	which way it runs flips as the trial energy crosses an eigenvalue. The
//	outer loop walks the energy by a signed step and, whenever the sign of
//	the terminal sample differs from the previous pass, halves the step and
//	reverses it. The search stops on the first pass whose |step| is at or
//	below EnergyStepCutoff, so the final energy is accurate to that cutoff.
//
// ⚙️ Usage:
//
//	cfg := shooting.DefaultConfig()
//	cfg.Potential = func(x float64) float64 { return x * x / 2 }
//	cfg.Parity = wavefunction.Odd
//
//	s, err := shooting.New(cfg)
//	if err != nil { … }
//	if err = s.Solve(); err != nil { … }
//	fmt.Println(s.Energy()) // ≈ 1.5
//
// Only even potentials (V(−x) = V(x)) are meaningful: the reconstructed
// wavefunction is the computed half mirrored about the origin.
//
// Complexity: O(passes · XMax/h) potential evaluations; O(XMax/h) memory.
package shooting
