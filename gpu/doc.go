// Package gpu defines the device-orchestration surface for rowfft.
//
// It mirrors the host Plan API while allowing persistent device buffers
// and backend-specific execution contexts. The built-in SIMT backend
// executes on the in-process work-group runtime and is the reference
// engine; CUDA and OpenCL backends are build-tagged integration stubs.
//
// A backend must be registered before plans can be created:
//
//	gpu.RegisterSIMTBackend()
//	plan, err := gpu.NewPlan(256, gpu.PlanOptions{})
package gpu
