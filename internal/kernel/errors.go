package kernel

import "errors"

// ErrUnsupportedLength is returned by Specialize when no butterfly
// factorization exists for the requested length. The radix-2 Stockham
// generator supports positive powers of two only. This is a
// specialization-time rejection: it fires before any kernel can run.
var ErrUnsupportedLength = errors.New("rowfft/kernel: unsupported transform length")
