package planar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hepvec/planar"
)

// Dispatch overhead matters here: the hot path is one map lookup plus a
// straight-line kernel. Native vs generated benchmarks show the cost of the
// conversion wrappers.

func BenchmarkDot_Native(b *testing.B) {
	v1 := xy(1.5, -2.5)
	v2 := xy(0.5, 3.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.Dot(v1, v2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDot_Generated(b *testing.B) {
	v1 := xy(1.5, -2.5)
	v2 := rhophi(3.5, 0.25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.Dot(v1, v2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRotateZ(b *testing.B) {
	v := xy(1.5, -2.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.RotateZ(v, math.Pi/3); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAdd_Polar(b *testing.B) {
	v1 := rhophi(2, 0.3)
	v2 := rhophi(1, -1.1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planar.Add(v1, v2); err != nil {
			b.Fatal(err)
		}
	}
}
