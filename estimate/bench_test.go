package estimate_test

import (
	"testing"

	"github.com/katalvlaran/timeuse/estimate"
	"github.com/katalvlaran/timeuse/model"
)

// BenchmarkSweep measures a full continuous wage sweep (five solver runs).
func BenchmarkSweep(b *testing.B) {
	p := model.DefaultParams(model.SharedDisutility)
	opts := estimate.NewOptions(model.SharedDisutility)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estimate.Sweep(p, opts); err != nil {
			b.Fatalf("Sweep: %v", err)
		}
	}
}

// BenchmarkRegress measures the OLS fit alone on a five-point sweep.
func BenchmarkRegress(b *testing.B) {
	p := model.DefaultParams(model.SharedDisutility)
	sr := syntheticSweep(0.4, -0.1, []float64{0.8, 0.9, 1.0, 1.1, 1.2})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := estimate.Regress(p, sr); err != nil {
			b.Fatalf("Regress: %v", err)
		}
	}
}
