package gpu

import (
	"sync"

	"github.com/cwbudde/rowfft/logger"
)

// Backend is implemented by execution backends (the built-in SIMT engine,
// CUDA, OpenCL). It is responsible for device discovery, buffer
// allocation, and kernel execution.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific execution context tied to a device.
type Context interface {
	Device() DeviceInfo
	// NewBuffer allocates a device buffer for elemCount complex samples.
	NewBuffer(elemCount int) (Buffer, error)
	// NewStream creates an execution stream/queue.
	NewStream() (Stream, error)
	// NewRowPlan creates a backend-specific row-transform plan for length n.
	NewRowPlan(n int, opts PlanOptions) (PlanImpl, error)
	Close() error
}

// Buffer is a device buffer of complex samples.
type Buffer interface {
	Len() int
	// Upload copies from host to device.
	Upload(src []complex64) error
	// Download copies from device to host.
	Download(dst []complex64) error
	Close() error
}

// Stream represents an execution queue/stream.
type Stream interface {
	Synchronize() error
	Close() error
}

// PlanImpl is a backend-specific row-transform implementation. Transforms
// run in place over a device buffer holding rows contiguous rows of n
// complex samples each; Inverse includes the 1/N normalization.
type PlanImpl interface {
	Len() int
	Forward(buf Buffer, rows int) error
	Inverse(buf Buffer, rows int) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers an execution backend. Passing nil clears the
// backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()

	if b != nil {
		log := logger.Logger()
		log.Debug().Str("backend", b.Info().Name).Msg("registered gpu backend")
	}
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()

	if b == nil {
		return BackendInfo{}, false
	}

	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()

	return b
}
