package kernel

import "math/bits"

// Specialize emits the complete stage tables for transform length n.
//
// The factorization is radix-2 Stockham autosort in gather form: every
// stage reads a butterfly pair from the previous buffer and writes exactly
// one naturally-ordered slot of the next, so no bit-reversal pass exists
// and the output of both directions is in natural order.
//
// For stage t with Ns = 2^t and span = 2*Ns, lane i resolves
//
//	block = i / span, r = i mod span, rr = r mod Ns
//	pair  = (block*Ns + rr, block*Ns + rr + n/2)
//	tw    = rr * n/span
//	out   = pair[0] - w[tw]*pair[1]  if r >= Ns, + otherwise
//
// Returns ErrUnsupportedLength unless n is a positive power of two.
// n = 1 specializes to an empty stage list (identity copy-through).
func Specialize(n int) (*Program, error) {
	if n < 1 || n&(n-1) != 0 {
		return nil, ErrUnsupportedLength
	}

	if p := lookupProgram(n); p != nil {
		return p, nil
	}

	half := int32(n / 2)
	stages := make([]stage, 0, bits.TrailingZeros(uint(n)))

	for ns := 1; ns < n; ns <<= 1 {
		span := 2 * ns
		twStep := int32(n / span)
		st := make(stage, n)

		for i := 0; i < n; i++ {
			block := i / span
			r := i % span
			rr := r % ns
			pair := int32(block*ns + rr)

			st[i] = butterfly{
				a:   pair,
				b:   pair + half,
				tw:  int32(rr) * twStep,
				sub: r >= ns,
			}
		}

		stages = append(stages, st)
	}

	p := &Program{n: n, stages: stages}
	storeProgram(p)

	return p, nil
}
