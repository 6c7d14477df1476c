/*
Package history implements a linear undo/redo timeline over an arbitrary
state value.

The timeline is the concatenation past ++ [present] ++ future. There is
always exactly one present entry; undoing moves it into the future, redoing
moves it back, and any new edit discards the future entirely. Batching
collapses a run of state changes, such as a continuous drag gesture, into a
single undoable step.

The history exclusively owns its entries. States handed to it are never
modified, and callers must treat every state they get back as an immutable
snapshot.
*/
package history

import (
	"reflect"
	"time"
)

// Entry is one point on the timeline. Entries are never modified after
// creation.
type Entry[T any] struct {
	State     T
	Label     string
	Timestamp time.Time
}

// History is a linear undo/redo timeline over states of type T. The zero
// value is not usable; construct with New.
type History[T any] struct {
	past    []Entry[T]
	present Entry[T]
	future  []Entry[T]

	limit int
	equal func(T, T) bool

	batching  bool
	batchBase Entry[T]

	now func() time.Time
}

// New returns a timeline whose present is the initial state. limit bounds how
// many past entries are retained, with the oldest discarded first; zero or
// negative means unbounded. equal supplies structural equality on T, used
// only to decide whether a batch changed anything; nil falls back to
// reflect.DeepEqual.
func New[T any](initial T, label string, limit int, equal func(T, T) bool) *History[T] {
	if equal == nil {
		equal = func(a, b T) bool { return reflect.DeepEqual(a, b) }
	}
	h := &History[T]{
		limit: limit,
		equal: equal,
		now:   time.Now,
	}
	h.present = Entry[T]{State: initial, Label: label, Timestamp: h.now()}
	return h
}

// State returns the present state.
func (h *History[T]) State() T {
	return h.present.State
}

// Label returns the present entry's label.
func (h *History[T]) Label() string {
	return h.present.Label
}

// CanUndo reports whether there is anything to undo.
func (h *History[T]) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether there is anything to redo.
func (h *History[T]) CanRedo() bool {
	return len(h.future) > 0
}

// Len returns the total number of entries on the timeline.
func (h *History[T]) Len() int {
	return len(h.past) + 1 + len(h.future)
}

// Index returns the present entry's position on the timeline.
func (h *History[T]) Index() int {
	return len(h.past)
}

// Entries returns a copy of the timeline, oldest first. The entry at Index is
// the present one.
func (h *History[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], 0, h.Len())
	entries = append(entries, h.past...)
	entries = append(entries, h.present)
	entries = append(entries, h.future...)
	return entries
}

// push moves an entry onto the past, truncating the oldest entries beyond the
// limit, and discards the future: a new edit invalidates any redo branch.
func (h *History[T]) push(e Entry[T]) {
	h.past = append(h.past, e)
	if h.limit > 0 && len(h.past) > h.limit {
		h.past = append(h.past[:0], h.past[len(h.past)-h.limit:]...)
	}
	h.future = nil
}

// SetState records a new present state. Outside a batch the previous present
// becomes undoable; within a batch the present is replaced in place and the
// batch decides at EndBatch whether anything is recorded.
func (h *History[T]) SetState(state T, label string) {
	e := Entry[T]{State: state, Label: label, Timestamp: h.now()}
	if h.batching {
		h.present = e
		return
	}
	h.push(h.present)
	h.present = e
}

// StartBatch begins collapsing subsequent SetState calls into one step.
// Starting a batch while one is open is a no-op; the first batch's base state
// wins.
func (h *History[T]) StartBatch() {
	if h.batching {
		return
	}
	h.batching = true
	h.batchBase = h.present
}

// EndBatch closes the batch. If the state changed since StartBatch, the
// pre-batch snapshot becomes a single undoable entry and the present takes
// the batch label; otherwise the timeline is untouched and the present gets
// its pre-batch label back, so an aborted gesture leaves no trace.
func (h *History[T]) EndBatch(label string) {
	if !h.batching {
		return
	}
	h.batching = false

	if h.equal(h.batchBase.State, h.present.State) {
		h.present = h.batchBase
		return
	}

	h.push(h.batchBase)
	h.present.Label = label
	h.present.Timestamp = h.now()
}

// abandonBatch drops an open batch without recording it, restoring the
// pre-batch present. Timeline navigation during a gesture supersedes the
// gesture.
func (h *History[T]) abandonBatch() {
	if !h.batching {
		return
	}
	h.batching = false
	h.present = h.batchBase
}

// Undo steps the present one entry back, if possible.
func (h *History[T]) Undo() bool {
	if len(h.past) == 0 {
		return false
	}
	h.abandonBatch()

	e := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Entry[T]{h.present}, h.future...)
	h.present = e
	return true
}

// Redo steps the present one entry forward, if possible.
func (h *History[T]) Redo() bool {
	if len(h.future) == 0 {
		return false
	}
	h.abandonBatch()

	e := h.future[0]
	h.future = append([]Entry[T](nil), h.future[1:]...)
	h.past = append(h.past, h.present)
	h.present = e
	return true
}

// JumpTo moves the present to an arbitrary timeline position, splitting the
// flattened timeline there. The index is clamped to valid bounds; jumping to
// the current position is a no-op.
func (h *History[T]) JumpTo(index int) {
	if index < 0 {
		index = 0
	}
	if max := h.Len() - 1; index > max {
		index = max
	}
	if index == h.Index() {
		return
	}
	h.abandonBatch()

	entries := h.Entries()
	h.past = append([]Entry[T](nil), entries[:index]...)
	h.present = entries[index]
	h.future = append([]Entry[T](nil), entries[index+1:]...)
}

// Reset replaces the present and discards the whole timeline without leaving
// a recoverable entry. Used when loading a different character set, not when
// editing the current one.
func (h *History[T]) Reset(state T, label string) {
	h.abandonBatch()
	h.past = nil
	h.future = nil
	h.present = Entry[T]{State: state, Label: label, Timestamp: h.now()}
}
