package rowfft

import "errors"

// Sentinel errors returned by rowfft operations.
var (
	// ErrInvalidLength is returned when the transform length is not a
	// positive power of two. Lengths are fixed at plan creation; there is
	// no runtime fallback for unsupported sizes.
	ErrInvalidLength = errors.New("rowfft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("rowfft: nil slice")

	// ErrLengthMismatch is returned when a slice is too short for the
	// plan's transform length and the requested row count.
	ErrLengthMismatch = errors.New("rowfft: slice length mismatch")

	// ErrInvalidStride is returned when a column count does not describe a
	// valid row-major layout for the plan's transform length.
	ErrInvalidStride = errors.New("rowfft: invalid stride")
)
