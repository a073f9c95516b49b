package finitediff_test

import (
	"testing"

	"github.com/katalvlaran/schrodinger/finitediff"
)

// BenchmarkAdvance measures one full pass of the recurrence over 10⁴ points.
func BenchmarkAdvance(b *testing.B) {
	const (
		h = 1e-4
		n = 10000
	)
	v := func(x float64) float64 { return x * x / 2 }
	buf := make([]float64, 0, n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = append(buf[:0], 1, 1)
		for j := 1; len(buf) < n; j++ {
			buf = finitediff.Advance(buf, float64(j)*h, 0.5, h, v)
		}
	}
}
