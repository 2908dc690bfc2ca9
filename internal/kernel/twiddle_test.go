package kernel

import (
	"math"
	"testing"
)

func TestTwiddleAtForward(t *testing.T) {
	t.Parallel()

	const n = 8
	for i := 0; i < n; i++ {
		angle := -2 * math.Pi * float64(i) / float64(n)
		want := complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
		if got := twiddleAt(i, n, 1); got != want {
			t.Errorf("twiddleAt(%d, %d, +1) = %v, want %v", i, n, got, want)
		}
	}
}

// Inverse twiddles are the conjugates of the forward ones.
func TestTwiddleAtInverseConjugates(t *testing.T) {
	t.Parallel()

	const n = 16
	for i := 0; i < n; i++ {
		fwd := twiddleAt(i, n, 1)
		inv := twiddleAt(i, n, -1)
		if real(inv) != real(fwd) || imag(inv) != -imag(fwd) {
			t.Errorf("lane %d: inverse %v is not conjugate of forward %v", i, inv, fwd)
		}
	}
}

func TestTwiddleAtLaneZeroIsUnity(t *testing.T) {
	t.Parallel()

	for _, sign := range []float32{1, -1} {
		if got := twiddleAt(0, 4, sign); got != complex(float32(1), 0) {
			t.Errorf("twiddleAt(0, 4, %v) = %v, want (1+0i)", sign, got)
		}
	}
}

func TestMulExpandedForm(t *testing.T) {
	t.Parallel()

	a := complex(float32(2), float32(3))
	b := complex(float32(-1), float32(4))
	// (2*-1 - 3*4, 2*4 + 3*-1) = (-14, 5)
	if got := mul(a, b); got != complex(float32(-14), float32(5)) {
		t.Errorf("mul(%v, %v) = %v, want (-14+5i)", a, b, got)
	}
}
