package kernel

// mul returns the complex product of a and b in expanded form:
// (a.re*b.re - a.im*b.im, a.re*b.im + a.im*b.re).
// This is the single multiply every butterfly merge step uses.
func mul(a, b complex64) complex64 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)

	return complex(ar*br-ai*bi, ar*bi+ai*br)
}
