package gpu

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/cwbudde/rowfft"
)

// SIMTBackend executes transforms on the in-process work-group runtime.
// It satisfies the backend interfaces with host memory standing in for
// device memory, and is the reference engine the accelerator backends are
// validated against.
type SIMTBackend struct {
	device DeviceInfo
}

// NewSIMTBackend returns the built-in work-group execution backend.
func NewSIMTBackend() *SIMTBackend {
	return &SIMTBackend{
		device: DeviceInfo{
			Name:       "SIMT work-group engine",
			Vendor:     "rowfft",
			Driver:     "simt",
			MemoryMB:   0,
			ComputeCap: hostComputeCap(),
		},
	}
}

// RegisterSIMTBackend registers the built-in backend as the active backend.
func RegisterSIMTBackend() {
	RegisterBackend(NewSIMTBackend())
}

// hostComputeCap reports the widest vector capability of the host, for
// device discovery output only; execution does not branch on it.
func hostComputeCap() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "avx512"
	case cpu.X86.HasAVX2:
		return "avx2"
	case cpu.X86.HasSSE2:
		return "sse2"
	case cpu.ARM64.HasASIMD:
		return "neon"
	default:
		return runtime.GOARCH
	}
}

func (b *SIMTBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "simt",
		Version:     "1.0",
		Description: "in-process work-group execution engine",
	}
}

func (b *SIMTBackend) Available() bool {
	return true
}

func (b *SIMTBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *SIMTBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("rowfft/gpu: simt backend device index %d out of range", deviceIndex)
	}

	return &simtContext{device: b.device}, nil
}

type simtContext struct {
	device DeviceInfo
}

func (c *simtContext) Device() DeviceInfo {
	return c.device
}

func (c *simtContext) NewBuffer(elemCount int) (Buffer, error) {
	if elemCount < 1 {
		return nil, ErrInvalidLength
	}

	return &simtBuffer{data: make([]complex64, elemCount)}, nil
}

func (c *simtContext) NewStream() (Stream, error) {
	return &simtStream{}, nil
}

func (c *simtContext) NewRowPlan(n int, _ PlanOptions) (PlanImpl, error) {
	plan, err := rowfft.NewPlan(n)
	if err != nil {
		return nil, ErrInvalidLength
	}

	return &simtPlan{plan: plan}, nil
}

func (c *simtContext) Close() error {
	return nil
}

// simtBuffer is host memory standing in for device memory.
type simtBuffer struct {
	data []complex64
}

func (b *simtBuffer) Len() int {
	return len(b.data)
}

func (b *simtBuffer) Upload(src []complex64) error {
	if src == nil {
		return ErrNilSlice
	}

	if len(src) > len(b.data) {
		return ErrLengthMismatch
	}

	copy(b.data, src)

	return nil
}

func (b *simtBuffer) Download(dst []complex64) error {
	if dst == nil {
		return ErrNilSlice
	}

	if len(dst) > len(b.data) {
		return ErrLengthMismatch
	}

	copy(dst, b.data[:len(dst)])

	return nil
}

func (b *simtBuffer) Close() error {
	b.data = nil

	return nil
}

// simtStream is a no-op queue: the work-group runtime is synchronous.
type simtStream struct{}

func (s *simtStream) Synchronize() error { return nil }
func (s *simtStream) Close() error       { return nil }

type simtPlan struct {
	plan *rowfft.Plan
}

func (p *simtPlan) Len() int {
	return p.plan.Len()
}

func (p *simtPlan) Forward(buf Buffer, rows int) error {
	sb, ok := buf.(*simtBuffer)
	if !ok {
		return ErrWrongBackend
	}

	return p.plan.ForwardRows(sb.data, rows)
}

func (p *simtPlan) Inverse(buf Buffer, rows int) error {
	sb, ok := buf.(*simtBuffer)
	if !ok {
		return ErrWrongBackend
	}

	return p.plan.InverseRows(sb.data, rows)
}

func (p *simtPlan) Close() error {
	p.plan = nil

	return nil
}
