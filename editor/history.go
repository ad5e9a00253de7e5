package editor

import (
	"ideaboard/board"
)

// DefaultHistoryLimit is the number of undo steps kept when no explicit
// limit is configured.
const DefaultHistoryLimit = 50

// History manages undo/redo using two stacks of deep-copied board
// snapshots. past holds the states that preceded each applied mutation,
// bounded by limit with the oldest entries evicted first. future holds
// states walked back over by undo and is discarded whenever a new
// mutation lands.
type History struct {
	past   []*board.Board
	future []*board.Board
	limit  int
}

// NewHistory creates a history with the given bound on past states.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Checkpoint records the pre-mutation state. Must be called before the
// mutation is applied to the live board. Any redo states are dropped.
func (h *History) Checkpoint(b *board.Board) {
	h.past = append(h.past, b.Clone())
	if len(h.past) > h.limit {
		h.past = h.past[1:]
	}
	h.future = nil
}

// CanUndo returns true if at least one past state is stored.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo returns true if at least one undone state can be reapplied.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Undo pops the most recent past state, saving current for redo. Returns
// nil when there is nothing to undo. The returned board is owned by the
// caller; history keeps no reference to it.
func (h *History) Undo(current *board.Board) *board.Board {
	if len(h.past) == 0 {
		return nil
	}
	top := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, current.Clone())
	return top
}

// Redo pops the most recent undone state, saving current for undo.
// Returns nil when there is nothing to redo.
func (h *History) Redo(current *board.Board) *board.Board {
	if len(h.future) == 0 {
		return nil
	}
	top := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, current.Clone())
	return top
}

// Clear drops all stored states.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
}

// Depths returns the number of undo and redo steps available.
func (h *History) Depths() (past, future int) {
	return len(h.past), len(h.future)
}
