package editor

import (
	"fmt"
	"testing"

	"ideaboard/board"
)

func boardWithNodes(n int) *board.Board {
	b := board.NewBoard()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("n%d", i)
		b.Nodes[id] = &board.Node{ID: id}
	}
	return b
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(10)

	empty := boardWithNodes(0)
	one := boardWithNodes(1)
	two := boardWithNodes(2)

	h.Checkpoint(empty) // before first mutation
	h.Checkpoint(one)   // before second mutation

	if !h.CanUndo() {
		t.Fatal("should be able to undo")
	}
	if h.CanRedo() {
		t.Fatal("should not be able to redo yet")
	}

	// Live state is `two`; undo should hand back `one`
	prev := h.Undo(two)
	if prev == nil || len(prev.Nodes) != 1 {
		t.Fatalf("undo returned wrong state: %+v", prev)
	}
	if !h.CanRedo() {
		t.Fatal("should be able to redo after undo")
	}

	next := h.Redo(prev)
	if next == nil || len(next.Nodes) != 2 {
		t.Fatalf("redo returned wrong state: %+v", next)
	}
}

func TestHistoryEmptyNoops(t *testing.T) {
	h := NewHistory(10)
	if h.Undo(boardWithNodes(0)) != nil {
		t.Error("undo on empty history should return nil")
	}
	if h.Redo(boardWithNodes(0)) != nil {
		t.Error("redo on empty history should return nil")
	}
}

func TestHistoryBound(t *testing.T) {
	h := NewHistory(5)
	for i := 0; i < 50; i++ {
		h.Checkpoint(boardWithNodes(i))
	}

	past, _ := h.Depths()
	if past != 5 {
		t.Fatalf("past depth = %d, want 5", past)
	}

	// Oldest surviving entry should be the 46th checkpoint (45 nodes)
	var last *board.Board
	current := boardWithNodes(50)
	for h.CanUndo() {
		last = h.Undo(current)
		current = last
	}
	if len(last.Nodes) != 45 {
		t.Errorf("oldest surviving state has %d nodes, want 45", len(last.Nodes))
	}
}

func TestHistoryCheckpointClearsFuture(t *testing.T) {
	h := NewHistory(10)
	h.Checkpoint(boardWithNodes(0))
	h.Checkpoint(boardWithNodes(1))

	h.Undo(boardWithNodes(2))
	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	h.Checkpoint(boardWithNodes(1))
	if h.CanRedo() {
		t.Error("new checkpoint must clear forward history")
	}
}

func TestHistorySnapshotsDoNotAlias(t *testing.T) {
	h := NewHistory(10)
	live := boardWithNodes(1)
	h.Checkpoint(live)

	live.Nodes["n0"].Label = "mutated"

	prev := h.Undo(boardWithNodes(1))
	if prev.Nodes["n0"].Label == "mutated" {
		t.Error("history snapshot aliases the live board")
	}
}
