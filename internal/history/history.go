// Package history provides a bounded undo/redo stack of scene snapshots.
package history

import (
	"field-setter/internal/scene"
)

// DefaultLimit is how many snapshots are retained.
const DefaultLimit = 50

// History retains the most recent snapshots, discarding the oldest on
// overflow. Snapshots are whole-scene values; operations on scenes are
// pure, so retained pointers stay valid.
type History struct {
	snapshots []*scene.Scene
	index     int // position of the current snapshot
	limit     int
}

// New creates a history seeded with an initial snapshot.
func New(initial *scene.Scene) *History {
	return NewWithLimit(initial, DefaultLimit)
}

// NewWithLimit creates a history with a custom retention bound.
func NewWithLimit(initial *scene.Scene, limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{
		snapshots: []*scene.Scene{initial},
		limit:     limit,
	}
}

// Push records a new snapshot, truncating any redo tail. When the bound is
// exceeded the oldest snapshot is dropped.
func (h *History) Push(s *scene.Scene) {
	h.snapshots = append(h.snapshots[:h.index+1], s)
	if len(h.snapshots) > h.limit {
		drop := len(h.snapshots) - h.limit
		h.snapshots = h.snapshots[drop:]
	}
	h.index = len(h.snapshots) - 1
}

// Undo steps back one snapshot. Returns (nil, false) at the oldest
// retained snapshot.
func (h *History) Undo() (*scene.Scene, bool) {
	if h.index == 0 {
		return nil, false
	}
	h.index--
	return h.snapshots[h.index], true
}

// Redo steps forward one snapshot. Returns (nil, false) at the newest.
func (h *History) Redo() (*scene.Scene, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return h.snapshots[h.index], true
}

// Current returns the snapshot at the cursor.
func (h *History) Current() *scene.Scene {
	return h.snapshots[h.index]
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// CanUndo reports whether an older snapshot is available.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a newer snapshot is available.
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }
