package schrodinger_test

import (
	"fmt"

	"github.com/katalvlaran/schrodinger/matching"
	"github.com/katalvlaran/schrodinger/potential"
	"github.com/katalvlaran/schrodinger/shooting"
	"github.com/katalvlaran/schrodinger/spectrum"
	"github.com/katalvlaran/schrodinger/variational"
	"github.com/katalvlaran/schrodinger/wavefunction"
)

// Example_squareWellShooting solves a particle in a box of width 1 with the
// shooting method.
//
// Scenario:
//
//	The box is a well of depth 1e5, integrated to XMax = 0.55 with
//	h = 1.15e-4. The even ground state sits just below π²/2 ≈ 4.93 and the
//	first odd state at four times that.
func Example_squareWellShooting() {
	cfg := shooting.DefaultConfig()
	cfg.XMax = 0.55
	cfg.StepSize = 1.15 / 10000
	cfg.Potential = potential.Box(1, 1e5)

	energies := make(map[wavefunction.Parity]float64, 2)
	for _, p := range []wavefunction.Parity{wavefunction.Even, wavefunction.Odd} {
		cfg.Parity = p
		s, err := shooting.New(cfg)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		if err = s.Solve(); err != nil {
			fmt.Println("error:", err)

			return
		}
		energies[p] = s.Energy()
	}
	fmt.Printf("even: E=%.1f\n", energies[wavefunction.Even])
	fmt.Printf("odd/even: %.2f\n", energies[wavefunction.Odd]/energies[wavefunction.Even])
	// Output:
	// even: E=4.9
	// odd/even: 4.00
}

// Example_harmonicMatching joins two branches of the harmonic oscillator on
// [−2.5, 2.5] one third of the way in.
func Example_harmonicMatching() {
	cfg := matching.DefaultConfig()
	cfg.XMin, cfg.XMax = -2.5, 2.5
	cfg.StepSize = 1e-4
	cfg.InitialEnergy = 0.01
	cfg.EnergyStepCutoff = 1e-3
	cfg.MatchIndex = cfg.IndexAt(cfg.XMin + (cfg.XMax-cfg.XMin)/3)
	cfg.Potential = potential.Harmonic(1)

	s, err := matching.New(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = s.Solve(); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("E=%.1f join=%.3f\n", s.Energy(), s.MatchX())
	// Output:
	// E=0.5 join=-0.833
}

// Example_lennardJonesVariational bounds the ground state of a
// Lennard-Jones well from above with Gaussian trial functions and checks
// the bound against the exact discrete level.
func Example_lennardJonesVariational() {
	const h = 5e-3
	lj := potential.LennardJones(100, 1)

	cfg := variational.DefaultConfig()
	cfg.XMin, cfg.XMax, cfg.StepSize = 0.5, 4, h
	cfg.Potential = lj
	cfg.Family = variational.Gaussian{Center: potential.LennardJonesMinimum(1)}
	cfg.AlphaMin, cfg.AlphaMax = 1, 1e3

	s, err := variational.New(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = s.Solve(); err != nil {
		fmt.Println("error:", err)

		return
	}
	levels, err := spectrum.Levels(spectrum.Config{XMin: 0.5, XMax: 4, StepSize: h, Potential: lj}, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("bound:", s.Energy() < 0)
	fmt.Println("above ground:", s.Energy() >= levels[0])
	// Output:
	// bound: true
	// above ground: true
}
