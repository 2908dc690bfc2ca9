package simt

import "sync"

// Group is a fixed-size work-group. Every lane executes the same kernel
// body; Sync returns only once all lanes of the group have reached it.
// Groups never synchronize with each other.
//
// A Group is reusable across invocations but must not be shared by two
// concurrent Run calls.
type Group struct {
	lanes int
	b     barrier
}

// NewGroup creates a work-group with the given number of lanes.
// The lane count is a specialization-time constant, not runtime input;
// anything below 1 panics.
func NewGroup(lanes int) *Group {
	if lanes < 1 {
		panic("simt: group size must be at least 1")
	}
	g := &Group{lanes: lanes}
	g.b.init(lanes)
	return g
}

// Lanes returns the number of lanes in the group.
func (g *Group) Lanes() int { return g.lanes }

// Run executes body once per lane, each lane on its own goroutine, and
// returns when every lane has finished. There is no cancellation: a
// launched group runs to completion.
//
// The body must call Sync the same number of times on every lane.
// Divergent barrier counts deadlock the group by contract; that is a
// kernel specialization defect, not a runtime-detectable error.
func (g *Group) Run(body func(lane int)) {
	if g.lanes == 1 {
		body(0)
		return
	}
	var wg sync.WaitGroup
	wg.Add(g.lanes)
	for lane := 0; lane < g.lanes; lane++ {
		go func(lane int) {
			defer wg.Done()
			body(lane)
		}(lane)
	}
	wg.Wait()
}

// Sync blocks the calling lane until all lanes of the group have reached
// the same barrier phase. It is also the local-memory fence: writes made
// by any lane before Sync are visible to every lane after it returns.
func (g *Group) Sync() { g.b.await() }
