package simt

import "sync"

// barrier is a reusable (cyclic) barrier for a fixed number of parties.
// A call to await returns only once all parties have called await in the
// same phase; the barrier then resets for the next phase.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	phase   uint64
}

func (b *barrier) init(parties int) {
	b.parties = parties
	b.cond = sync.NewCond(&b.mu)
}

func (b *barrier) await() {
	b.mu.Lock()
	phase := b.phase
	b.waiting++
	if b.waiting == b.parties {
		b.waiting = 0
		b.phase++
		b.cond.Broadcast()
		b.mu.Unlock()
		return
	}
	for b.phase == phase {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
