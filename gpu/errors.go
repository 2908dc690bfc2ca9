package gpu

import "errors"

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("rowfft/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// usable on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("rowfft/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed backends.
	ErrNotImplemented = errors.New("rowfft/gpu: not implemented")

	// ErrInvalidLength is returned for invalid plan sizes.
	ErrInvalidLength = errors.New("rowfft/gpu: invalid length")

	// ErrNilSlice is returned when host data is nil.
	ErrNilSlice = errors.New("rowfft/gpu: nil slice")

	// ErrLengthMismatch is returned when buffer or slice lengths do not match
	// the plan's transform length and row count.
	ErrLengthMismatch = errors.New("rowfft/gpu: length mismatch")

	// ErrWrongBackend is returned when a buffer from one backend is passed to
	// a plan created by another.
	ErrWrongBackend = errors.New("rowfft/gpu: buffer belongs to a different backend")
)
