package config_test

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/schrodinger/config"
	"github.com/katalvlaran/schrodinger/shooting"
)

// ExampleShooting describes a solve in YAML: the odd ground state of the
// harmonic oscillator V = x²/2.
func ExampleShooting() {
	const doc = `
potential:
  kind: harmonic
shooting:
  parity: odd
`
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(doc)); err != nil {
		fmt.Println("error:", err)

		return
	}

	p, err := config.Potential(v, "potential")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	cfg, err := config.Shooting(v, "shooting", p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	s, err := shooting.New(cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if err = s.Solve(); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s: E=%.4f\n", cfg.Parity, s.Energy())
	// Output:
	// odd: E=1.5000
}
