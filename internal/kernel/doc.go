// Package kernel implements the device-side semantics of the row transform:
// per-lane twiddle evaluation, row staging into work-group local buffers,
// and the barrier-separated butterfly stage network.
//
// The stage sequence for a given length is produced ahead of execution by
// Specialize, which plays the role of the external code generator: it emits
// complete, loop-free per-stage butterfly tables for one fixed N. Execution
// then carries no runtime branching on N.
//
// All arithmetic is single precision. Rounding error accumulates over the
// log2(N) stages and is accepted, not corrected.
package kernel
