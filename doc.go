// Package rowfft implements the work-group FFT primitive of a
// reciprocal-space (particle-mesh Ewald) solver: fixed-length complex
// transforms executed per matrix row or column, in single precision.
//
// Each row is transformed by one work-group of exactly N lanes sharing two
// ping-pong staging buffers and a per-lane twiddle table; the butterfly
// stage sequence for a length is specialized ahead of execution and
// carries no runtime branching on N. Forward transforms are unnormalized;
// Inverse applies the 1/N scale the surrounding solver expects.
//
// Transform lengths must be powers of two. Unsupported lengths are
// rejected when the plan is created, before any kernel can be dispatched.
package rowfft
