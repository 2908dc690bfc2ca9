package kernel

import "github.com/cwbudde/rowfft/internal/simt"

// Scratch is the work-group local storage for one invocation: the per-lane
// twiddle table and the two ping-pong staging buffers. A Scratch belongs to
// exactly one work-group at a time and does not outlive the invocation it
// serves.
type Scratch struct {
	Twiddle []complex64
	Data0   []complex64
	Data1   []complex64
}

// NewScratch allocates local storage sized for an n-lane group.
func NewScratch(n int) *Scratch {
	return &Scratch{
		Twiddle: make([]complex64, n),
		Data0:   make([]complex64, n),
		Data1:   make([]complex64, n),
	}
}

// Transform runs the staged butterfly network for one row on grp, which
// must have exactly p.Len() lanes. Lane i owns the global element
// data[base+i*stride]; stride 1 walks a row, stride = matrix width walks a
// column. sign selects the direction: +1 forward, -1 inverse
// (unnormalized). Any other sign corrupts the spectrum by contract; the
// kernel does not validate it.
//
// Every lane executes the same phases unconditionally: twiddle evaluation
// and staging copy, one fence covering both write sets, then each stage
// followed by a fence, then the write-back of its own slot. The fences are
// the only ordering mechanism; no slot is written twice between fences.
func (p *Program) Transform(grp *simt.Group, data []complex64, base, stride int, sign float32, sc *Scratch) {
	n := p.n

	grp.Run(func(lane int) {
		sc.Twiddle[lane] = twiddleAt(lane, n, sign)
		sc.Data0[lane] = data[base+lane*stride]
		grp.Sync()

		src, dst := sc.Data0, sc.Data1
		for _, st := range p.stages {
			bf := st[lane]

			t := mul(sc.Twiddle[bf.tw], src[bf.b])
			if bf.sub {
				dst[lane] = src[bf.a] - t
			} else {
				dst[lane] = src[bf.a] + t
			}

			grp.Sync()
			src, dst = dst, src
		}

		data[base+lane*stride] = src[lane]
	})
}
