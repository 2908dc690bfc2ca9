package kernel

import "sync"

// butterfly describes one lane's work in one stage: combine prev[a] and
// w[tw]*prev[b] by addition or subtraction into this lane's output slot.
type butterfly struct {
	a, b int32
	tw   int32
	sub  bool
}

// stage holds one butterfly per lane. Exactly one lane writes each output
// slot, so a stage needs no intra-stage synchronization beyond the fence
// that follows it.
type stage []butterfly

// Program is the specialized stage sequence for one fixed transform
// length: the tables an external generator would emit per N. Programs are
// immutable after specialization and safe to share across work-groups.
type Program struct {
	n      int
	stages []stage
}

// Len returns the transform length (lanes per work-group).
func (p *Program) Len() int { return p.n }

// Stages returns the number of barrier-separated butterfly stages, log2(N).
func (p *Program) Stages() int { return len(p.stages) }

// Specialized programs are cached per length; specialization is cheap but
// plans for the same N are common (one per matrix axis).
var (
	programMu sync.RWMutex
	programs  = make(map[int]*Program)
)

func lookupProgram(n int) *Program {
	programMu.RLock()
	p := programs[n]
	programMu.RUnlock()

	return p
}

func storeProgram(p *Program) {
	programMu.Lock()
	programs[p.n] = p
	programMu.Unlock()
}
