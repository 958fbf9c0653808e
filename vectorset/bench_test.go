package vectorset_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katvale/solvecore/vectorset"
)

// BenchmarkSet_AddValue measures the hot single-component add path over
// a populated set.
func BenchmarkSet_AddValue(b *testing.B) {
	const vectors = 1000
	const components = 32

	s := vectorset.New()
	ids := make([]vectorset.ID, vectors)
	names := make([]string, components)
	for i := range names {
		names[i] = fmt.Sprintf("c%d", i)
	}
	rng := rand.New(rand.NewSource(1))
	for i := range ids {
		vals := vectorset.Values{}
		for _, n := range names {
			if rng.Intn(4) == 0 {
				vals[n] = rng.Float64()
			}
		}
		ids[i] = s.NewVector(vals)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.AddValue(ids[i%vectors], names[i%components], 0.5, false)
	}
}

// BenchmarkSet_AddScaledVector measures the batched row combination a
// solver performs during elimination.
func BenchmarkSet_AddScaledVector(b *testing.B) {
	s := vectorset.New()
	rng := rand.New(rand.NewSource(2))
	target := s.NewVector(nil)
	source := s.NewVector(nil)
	for i := 0; i < 64; i++ {
		s.SetValue(source, fmt.Sprintf("c%d", i), rng.Float64()+0.5, false)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.AddScaledVector(target, source, 1)
		if i%64 == 63 {
			b.StopTimer()
			s.MultiplyVector(target, 0) // keep magnitudes bounded
			b.StartTimer()
		}
	}
}

// BenchmarkSet_SetToZeroInAllVectors measures the one-pass sweep
// against a component held by many vectors.
func BenchmarkSet_SetToZeroInAllVectors(b *testing.B) {
	const holders = 512

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := vectorset.New()
		for v := 0; v < holders; v++ {
			s.NewVector(vectorset.Values{"shared": 1, fmt.Sprintf("own%d", v): 2})
		}
		b.StartTimer()
		s.SetToZeroInAllVectors("shared")
	}
}
