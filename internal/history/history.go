// Package history implements the bounded linear undo/redo stack over
// committed grid snapshots.
package history

import (
	"github.com/driftpeak/terracarve/internal/terrain"
)

// DefaultCapacity is the maximum number of retained snapshots.
const DefaultCapacity = 100

// History is a linear, branch-free undo stack: a push after undoing
// destroys the previously redoable future, standard editor semantics.
// Entries are grid snapshots owned by the history; callers must treat
// them as immutable.
type History struct {
	entries []*terrain.Grid
	cursor  int
	cap     int
}

// New creates an empty history with the given capacity. Capacities
// below 1 fall back to DefaultCapacity.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{cursor: -1, cap: capacity}
}

// Push truncates any redo future, appends the snapshot and advances the
// cursor. The oldest entry is evicted once the capacity is exceeded.
func (h *History) Push(g *terrain.Grid) {
	h.entries = append(h.entries[:h.cursor+1], g)
	h.cursor = len(h.entries) - 1
	if len(h.entries) > h.cap {
		n := len(h.entries) - h.cap
		h.entries = append(h.entries[:0], h.entries[n:]...)
		h.cursor -= n
	}
}

// Undo moves the cursor back one entry. It reports false (and keeps the
// cursor) when already at the oldest entry.
func (h *History) Undo() (*terrain.Grid, bool) {
	if !h.CanUndo() {
		return h.Current(), false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo moves the cursor forward one entry. It reports false when there
// is no future to redo.
func (h *History) Redo() (*terrain.Grid, bool) {
	if !h.CanRedo() {
		return h.Current(), false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// CanUndo reports whether an older entry exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a newer entry exists.
func (h *History) CanRedo() bool { return h.cursor >= 0 && h.cursor < len(h.entries)-1 }

// Current returns the snapshot at the cursor, or nil before the first push.
func (h *History) Current() *terrain.Grid {
	if h.cursor < 0 {
		return nil
	}
	return h.entries[h.cursor]
}

// Len returns the number of retained entries.
func (h *History) Len() int { return len(h.entries) }
