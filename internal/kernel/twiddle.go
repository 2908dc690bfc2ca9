package kernel

import "math"

// twiddleAt returns the rotation factor one lane contributes to the shared
// twiddle table:
//
//	w[i] = (cos(-sign*i*2*pi/n), sin(-sign*i*2*pi/n))
//
// Forward transforms use sign = +1, inverse transforms sign = -1; the
// inverse is unnormalized (the host applies the 1/N scale). Angles are
// evaluated in float64 and narrowed once, matching the precision the
// device table stores.
func twiddleAt(i, n int, sign float32) complex64 {
	angle := -float64(sign) * 2 * math.Pi * float64(i) / float64(n)

	return complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
}
