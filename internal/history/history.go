// Package history keeps the editor's linear undo log.
//
// A History is either Empty or Active with a cursor into its entries.
// Commit and Undo are the only transitions; neither touches the scene, so
// the log can be driven without a renderer.
package history

import (
	"portfolio3d/internal/engine"
)

// DefaultMaxSteps caps the log when no limit is configured.
const DefaultMaxSteps = 50

// State is the tag of the history state machine.
type State int

const (
	StateEmpty State = iota
	StateActive
)

func (s State) String() string {
	if s == StateActive {
		return "active"
	}
	return "empty"
}

// Entry is one committed snapshot of the whole object list.
type Entry struct {
	Label   string
	Objects []engine.SceneObject
}

func (e Entry) clone() Entry {
	objs := make([]engine.SceneObject, len(e.Objects))
	copy(objs, e.Objects)
	return Entry{Label: e.Label, Objects: objs}
}

type History struct {
	maxSteps int
	entries  []Entry
	cursor   int
}

// New returns an empty history holding at most maxSteps entries.
// Non-positive limits fall back to DefaultMaxSteps.
func New(maxSteps int) *History {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &History{maxSteps: maxSteps, cursor: -1}
}

func (h *History) State() State {
	if len(h.entries) == 0 {
		return StateEmpty
	}
	return StateActive
}

// Commit records a copy of objects after the cursor. Entries past the cursor
// (left behind by Undo) are discarded for good, and the oldest entry is
// dropped once the log is over its limit.
func (h *History) Commit(label string, objects []engine.SceneObject) {
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, Entry{Label: label, Objects: objects}.clone())
	h.cursor = len(h.entries) - 1

	if over := len(h.entries) - h.maxSteps; over > 0 {
		h.entries = append([]Entry(nil), h.entries[over:]...)
		h.cursor -= over
	}
}

// Undo steps the cursor back and returns the entry to restore.
// At the first entry, or when empty, it reports false and does nothing.
func (h *History) Undo() (Entry, bool) {
	if h.cursor <= 0 {
		return Entry{}, false
	}
	h.cursor--
	return h.entries[h.cursor].clone(), true
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// Current returns the entry the cursor points at.
func (h *History) Current() (Entry, bool) {
	if h.cursor < 0 {
		return Entry{}, false
	}
	return h.entries[h.cursor].clone(), true
}

func (h *History) Len() int {
	return len(h.entries)
}

// Cursor is -1 while the history is empty.
func (h *History) Cursor() int {
	return h.cursor
}

func (h *History) MaxSteps() int {
	return h.maxSteps
}

// Labels lists entry labels oldest first.
func (h *History) Labels() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Label
	}
	return out
}
