package rowfft

import (
	"math"
	"math/rand"
	"testing"
)

// Shared test helpers: float64 reference DFT and tolerance assertions.

func referenceDFT(in []complex64, sign float64) []complex64 {
	n := len(in)
	out := make([]complex64, n)

	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for j := 0; j < n; j++ {
			angle := -sign * 2 * math.Pi * float64(k) * float64(j) / float64(n)
			c, s := math.Cos(angle), math.Sin(angle)
			re, im := float64(real(in[j])), float64(imag(in[j]))
			sumRe += re*c - im*s
			sumIm += re*s + im*c
		}
		out[k] = complex(float32(sumRe), float32(sumIm))
	}

	return out
}

func randomRow(n int, seed int64) []complex64 {
	rnd := rand.New(rand.NewSource(seed))
	row := make([]complex64, n)
	for i := range row {
		row[i] = complex(float32(rnd.Float64()*2-1), float32(rnd.Float64()*2-1))
	}

	return row
}

func assertRowClose(t *testing.T, got, want []complex64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	maxMag := 1.0
	for _, v := range want {
		if mag := math.Hypot(float64(real(v)), float64(imag(v))); mag > maxMag {
			maxMag = mag
		}
	}

	tol := 1e-4 * maxMag
	for i := range want {
		dRe := float64(real(got[i]) - real(want[i]))
		dIm := float64(imag(got[i]) - imag(want[i]))
		if math.Hypot(dRe, dIm) > tol {
			t.Fatalf("element %d: got %v want %v (tol=%g)", i, got[i], want[i], tol)
		}
	}
}
