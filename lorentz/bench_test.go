package lorentz_test

import (
	"testing"

	"github.com/katalvlaran/hepvec/lorentz"
)

func BenchmarkDot_Native(b *testing.B) {
	v1 := xyzt(1, 2, 3, 10)
	v2 := xyzt(4, 0.5, 2, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lorentz.Dot(v1, v2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDot_Generated(b *testing.B) {
	v1 := allForms(1, 2, 3, 10)["rhophi_eta_tau"]
	v2 := xyzt(4, 0.5, 2, 5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lorentz.Dot(v1, v2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBoostZBeta(b *testing.B) {
	v := xyzt(1, 2, 3, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := lorentz.BoostZBeta(v, 0.6); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBoostP4(b *testing.B) {
	v := xyzt(1, 2, 3, 10)
	p4 := xyzt(3, 4, 10, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := lorentz.BoostP4(v, p4); err != nil {
			b.Fatal(err)
		}
	}
}
