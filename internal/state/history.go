package state

import (
	"sync"
)

// History is the ordered list of committed paths. Insertion order is drawing
// order is z-order: later paths render on top. It only ever grows by
// appending, shrinks from the end (undo), or is replaced wholesale (load).
type History struct {
	mu    sync.RWMutex
	paths []Path
}

// Commit appends a finished stroke. Paths with fewer than two points are an
// accidental tap, not a visible stroke, and are rejected.
func (h *History) Commit(p *Path) bool {
	if p == nil || len(p.Points) < 2 {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = append(h.paths, p.Clone())
	return true
}

// Undo removes the most recently committed path. No-op on empty history.
func (h *History) Undo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.paths) == 0 {
		return false
	}
	h.paths = h.paths[:len(h.paths)-1]
	return true
}

// Clear empties the history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = nil
}

// Replace swaps in a previously saved drawing.
func (h *History) Replace(paths []Path) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.paths = make([]Path, 0, len(paths))
	for i := range paths {
		h.paths = append(h.paths, paths[i].Clone())
	}
}

// Paths returns a snapshot copy safe to render or serialize while input
// keeps arriving.
func (h *History) Paths() []Path {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Path, 0, len(h.paths))
	for i := range h.paths {
		out = append(out, h.paths[i].Clone())
	}
	return out
}

// Len returns the number of committed paths.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.paths)
}

// PointCount is the total number of sampled points across all committed
// paths, used as the "is there anything worth beautifying" heuristic.
func (h *History) PointCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for i := range h.paths {
		n += len(h.paths[i].Points)
	}
	return n
}
