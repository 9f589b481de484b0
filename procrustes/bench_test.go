package procrustes_test

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/Bmdistef/ggcor/procrustes"
)

// benchConfig builds an n×d configuration with deterministic filler.
func benchConfig(n, d int) *mat.Dense {
	out := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			out.Set(i, j, float64((i*31+j*17)%13)+float64(i)/float64(n))
		}
	}
	return out
}

// BenchmarkTest_Protest_Small benchmarks protest on 30×4 vs 30×3 with the
// default 999 permutations.
func BenchmarkTest_Protest_Small(b *testing.B) {
	x := benchConfig(30, 4)
	y := benchConfig(30, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := procrustes.Test(procrustes.MethodProtest, x, y); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTest_Rtest_Small benchmarks the 99-permutation legacy variant.
func BenchmarkTest_Rtest_Small(b *testing.B) {
	x := benchConfig(30, 4)
	y := benchConfig(30, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := procrustes.Test(procrustes.MethodRtest, x, y); err != nil {
			b.Fatal(err)
		}
	}
}
