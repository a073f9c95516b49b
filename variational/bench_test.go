package variational_test

import (
	"testing"

	"github.com/katalvlaran/schrodinger/variational"
)

// BenchmarkExpectation measures one ⟨H⟩ evaluation on the default grid.
func BenchmarkExpectation(b *testing.B) {
	s, err := variational.New(harmonicConfig(variational.Gaussian{}))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Expectation(0.5)
	}
}

// BenchmarkSolve_Harmonic measures a full scan and refinement.
func BenchmarkSolve_Harmonic(b *testing.B) {
	s, err := variational.New(harmonicConfig(variational.Gaussian{}))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset()
		if err = s.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}
