package model

// DefaultStableGenerations is how many consecutive unchanged generations end a game
const DefaultStableGenerations = 3

// StabilityWindow remembers the last differing grid and counts how many
// generations in a row have matched it
type StabilityWindow struct {
	threshold int
	pool      *GridPool
	snapshot  *Grid // nil until the first observation after a reset
	unchanged int
}

// NewStabilityWindow creates an empty window. Thresholds below 1 fall back to the default.
func NewStabilityWindow(threshold int, pool *GridPool) *StabilityWindow {
	if threshold < 1 {
		threshold = DefaultStableGenerations
	}
	if pool == nil {
		pool = NewGridPool()
	}
	return &StabilityWindow{threshold: threshold, pool: pool}
}

// Threshold returns the number of unchanged generations that counts as stable
func (w *StabilityWindow) Threshold() int {
	return w.threshold
}

// Unchanged returns the current count of consecutive unchanged generations
func (w *StabilityWindow) Unchanged() int {
	return w.unchanged
}

// HasSnapshot reports whether a grid has been recorded since the last reset
func (w *StabilityWindow) HasSnapshot() bool {
	return w.snapshot != nil
}

// Reset drops the recorded snapshot and the counter
func (w *StabilityWindow) Reset() {
	w.pool.Put(w.snapshot)
	w.snapshot = nil
	w.unchanged = 0
}

// Observe compares g against the recorded snapshot and reports whether the grid
// has now stayed unchanged for the threshold number of generations.
// The first observation after a reset only records the snapshot.
func (w *StabilityWindow) Observe(g *Grid) bool {
	if w.snapshot == nil {
		w.snapshot = w.pool.Get(g.width, g.height)
		w.record(g)
		return false
	}

	if w.snapshot.Equal(g) {
		w.unchanged++
	} else {
		w.unchanged = 0
		w.record(g)
	}
	return w.unchanged >= w.threshold
}

func (w *StabilityWindow) record(g *Grid) {
	if err := w.snapshot.CopyFrom(g); err != nil {
		// a resized grid replaces the snapshot outright
		w.pool.Put(w.snapshot)
		w.snapshot = w.pool.Get(g.width, g.height)
		_ = w.snapshot.CopyFrom(g)
	}
}
