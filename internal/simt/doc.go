// Package simt provides the SPMD execution runtime used by the transform
// kernel: fixed-size work-groups of lanes that share local buffers and
// synchronize through a cyclic barrier.
//
// A Group models one GPU work-group. Lanes of a group run the same kernel
// body and coordinate exclusively through Sync; lanes outside the group are
// invisible. Ordering between barrier phases within one group is total.
package simt
