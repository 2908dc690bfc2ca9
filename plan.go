package rowfft

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/rowfft/internal/kernel"
	"github.com/cwbudde/rowfft/internal/simt"
	"github.com/cwbudde/rowfft/logger"
)

// Direction sign the kernel contract expects: exactly +1 or -1.
const (
	signForward float32 = 1
	signInverse float32 = -1
)

// Plan is the host-side orchestrator for one transform length. It owns the
// specialized stage program and a pool of work-groups with their local
// scratch; a Plan is safe for concurrent use.
type Plan struct {
	n       int
	program *kernel.Program
	groups  sync.Pool // *workGroup
}

// workGroup pairs an N-lane group with its exclusive local storage.
type workGroup struct {
	grp     *simt.Group
	scratch *kernel.Scratch
}

// NewPlan specializes a plan for transform length n.
//
// Returns ErrInvalidLength unless n is a positive power of two. The
// rejection happens here, before any kernel can be dispatched; transform
// calls on a valid plan perform no length dispatch of their own.
func NewPlan(n int) (*Plan, error) {
	program, err := kernel.Specialize(n)
	if err != nil {
		return nil, ErrInvalidLength
	}

	p := &Plan{n: n, program: program}
	p.groups.New = func() any {
		return &workGroup{
			grp:     simt.NewGroup(n),
			scratch: kernel.NewScratch(n),
		}
	}

	log := logger.Logger()
	log.Debug().Int("n", n).Int("stages", program.Stages()).Msg("created transform plan")

	return p, nil
}

// Len returns the transform length, which is also the number of lanes per
// work-group.
func (p *Plan) Len() int {
	if p == nil {
		return 0
	}

	return p.n
}

// Forward computes the in-place forward transform of a single row.
// data must hold at least one transform row.
func (p *Plan) Forward(data []complex64) error {
	return p.transformRows(data, 1, signForward)
}

// Inverse computes the in-place inverse transform of a single row,
// applying the 1/N normalization the kernel itself omits.
func (p *Plan) Inverse(data []complex64) error {
	if err := p.transformRows(data, 1, signInverse); err != nil {
		return err
	}

	p.scale(data, 1)

	return nil
}

// ForwardRows transforms every row of a row-major rows-by-N matrix in
// place, one work-group per row. Work-groups are independent; the number
// running concurrently is bounded by GOMAXPROCS.
func (p *Plan) ForwardRows(data []complex64, rows int) error {
	return p.transformRows(data, rows, signForward)
}

// InverseRows is the inverse counterpart of ForwardRows, including the
// 1/N normalization.
func (p *Plan) InverseRows(data []complex64, rows int) error {
	if err := p.transformRows(data, rows, signInverse); err != nil {
		return err
	}

	p.scale(data, rows)

	return nil
}

// Transform computes either the forward or inverse row transform based on
// the inverse flag. This is a convenience wrapper over
// ForwardRows/InverseRows.
func (p *Plan) Transform(data []complex64, rows int, inverse bool) error {
	if inverse {
		return p.InverseRows(data, rows)
	}

	return p.ForwardRows(data, rows)
}

func (p *Plan) transformRows(data []complex64, rows int, sign float32) error {
	if err := p.validateRows(data, rows); err != nil {
		return err
	}

	if rows == 1 {
		p.runGroup(data, 0, 1, sign)

		return nil
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for row := 0; row < rows; row++ {
		base := row * p.n

		eg.Go(func() error {
			p.runGroup(data, base, 1, sign)

			return nil
		})
	}

	return eg.Wait()
}

// runGroup executes one work-group over the row at base with the given
// element stride, reusing pooled groups and their scratch.
func (p *Plan) runGroup(data []complex64, base, stride int, sign float32) {
	wg := p.groups.Get().(*workGroup)
	p.program.Transform(wg.grp, data, base, stride, sign, wg.scratch)
	p.groups.Put(wg)
}

func (p *Plan) validateRows(data []complex64, rows int) error {
	if data == nil {
		return ErrNilSlice
	}

	if rows < 1 || len(data) < rows*p.n {
		return ErrLengthMismatch
	}

	return nil
}

// scale applies the external 1/N normalization over count contiguous
// transforms.
func (p *Plan) scale(data []complex64, count int) {
	s := complex(float32(1.0/float64(p.n)), 0)
	for i := range data[:count*p.n] {
		data[i] *= s
	}
}
