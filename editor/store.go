// Package editor implements the board document engine: the document store
// holding the live board, its bounded undo/redo history, the placement
// heuristic for new nodes and the keyboard command dispatcher.
package editor

import (
	"github.com/google/uuid"

	"ideaboard/board"
)

// DefaultLabel is the label every new node starts with.
const DefaultLabel = "New Idea"

// Store owns the live board and wraps every content mutation with a
// history checkpoint. All operations run synchronously to completion and
// none of them returns an error: a stale node id or an absent viewport
// degrades to a no-op or a fallback position rather than failing.
//
// Store is not safe for concurrent use; it is driven from a single event
// loop, the same one that delivers keyboard and mouse input.
type Store struct {
	board    *board.Board
	history  *History
	viewport Viewport
	step     float64

	// dragging is the node id with an open move gesture. Continuous drag
	// frames for that node are coalesced into one checkpoint.
	dragging string

	onChange func(*board.Board)
}

// NewStore creates a store over an empty board.
func NewStore(historyLimit int) *Store {
	return &Store{
		board:   board.NewBoard(),
		history: NewHistory(historyLimit),
		step:    DefaultPlacementStep,
	}
}

// SetViewport attaches the canvas collaborator used for placement and
// coordinate conversion. May be nil (headless operation).
func (s *Store) SetViewport(v Viewport) {
	s.viewport = v
}

// SetPlacementStep overrides the fan-out distance for new nodes.
func (s *Store) SetPlacementStep(step float64) {
	if step > 0 {
		s.step = step
	}
}

// OnChange registers a hook invoked after every content mutation with the
// live board. The persistence bridge uses this; calls are synchronous and
// fire-and-forget, so the hook must not block.
func (s *Store) OnChange(fn func(*board.Board)) {
	s.onChange = fn
}

// Board returns the live board. Callers hold it as a read reference; all
// mutation goes through the store.
func (s *Store) Board() *board.Board {
	return s.board
}

// SetBoard replaces the live board, normalizing it first, and clears all
// history. Used when loading a board from the persistence bridge.
func (s *Store) SetBoard(b *board.Board) {
	if b == nil {
		b = board.NewBoard()
	}
	b.Normalize()
	s.board = b
	s.dragging = ""
	s.history.Clear()
}

// CanUndo reports whether an undo step is available.
func (s *Store) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Store) CanRedo() bool {
	return s.history.CanRedo()
}

// HistoryDepths returns the undo and redo depths, for status display.
func (s *Store) HistoryDepths() (past, future int) {
	return s.history.Depths()
}

// SelectedNode returns the selected node id, or "" for none.
func (s *Store) SelectedNode() string {
	return s.board.Selected
}

// CreateNode inserts a new node at a heuristic position near the viewport
// center (or the fixed fallback when no viewport is attached) and returns
// its id.
func (s *Store) CreateNode() string {
	return s.insertNode(s.placement())
}

// CreateNodeAt inserts a new node at a screen coordinate, converted to
// board space by the viewport. Without a viewport it behaves exactly like
// CreateNode.
func (s *Store) CreateNodeAt(x, y int) string {
	if s.viewport == nil {
		return s.insertNode(s.placement())
	}
	return s.insertNode(s.viewport.ScreenToBoard(x, y))
}

// CreateNodeAtPosition inserts a new node at an explicit board position.
func (s *Store) CreateNodeAtPosition(pos board.Position) string {
	return s.insertNode(pos)
}

func (s *Store) insertNode(pos board.Position) string {
	s.checkpoint()
	id := uuid.NewString()
	s.board.Nodes[id] = &board.Node{
		ID:        id,
		Position:  pos,
		Label:     DefaultLabel,
		Draggable: true,
	}
	s.changed()
	return id
}

// UpdateNodeContent merges a patch into a node's label and content. A
// stale id is tolerated: the checkpoint is still recorded, the patch is
// dropped.
func (s *Store) UpdateNodeContent(id string, patch board.ContentPatch) {
	s.checkpoint()
	node, ok := s.board.Nodes[id]
	if !ok {
		return
	}
	if patch.Label != nil {
		node.Label = *patch.Label
	}
	if patch.Text != nil {
		node.Content.Text = *patch.Text
	}
	if patch.Images != nil {
		node.Content.Images = make([]string, len(patch.Images))
		copy(node.Content.Images, patch.Images)
	}
	s.changed()
}

// MoveNode overwrites a node's position. The first call for a node opens a
// drag gesture and records one checkpoint; further calls for the same node
// are coalesced into it until EndMove or any other mutation closes the
// gesture. Undoing a drag therefore rewinds the whole gesture, not one
// frame. Unknown ids are ignored.
func (s *Store) MoveNode(id string, pos board.Position) {
	node, ok := s.board.Nodes[id]
	if !ok {
		return
	}
	if s.dragging != id {
		s.checkpoint()
		s.dragging = id
	}
	node.Position = pos
	s.changed()
}

// EndMove closes the current drag gesture, if any. The next MoveNode will
// checkpoint again.
func (s *Store) EndMove() {
	s.dragging = ""
}

// RemoveNode deletes a node, cascades removal of every edge touching it
// and clears the selection if it pointed at the node, all in the same
// transition. Unknown ids are ignored.
func (s *Store) RemoveNode(id string) {
	if !s.board.HasNode(id) {
		return
	}
	s.checkpoint()
	delete(s.board.Nodes, id)

	kept := s.board.Edges[:0]
	for _, e := range s.board.Edges {
		if !e.Touches(id) {
			kept = append(kept, e)
		}
	}
	s.board.Edges = kept

	if s.board.Selected == id {
		s.board.Selected = ""
	}
	s.changed()
}

// AddEdge connects two existing nodes. Self loops, duplicates and edges to
// missing nodes are silently ignored.
func (s *Store) AddEdge(source, target string) {
	if source == target || !s.board.HasNode(source) || !s.board.HasNode(target) {
		return
	}
	for _, e := range s.board.Edges {
		if e.Source == source && e.Target == target {
			return
		}
	}
	s.checkpoint()
	s.board.Edges = append(s.board.Edges, board.Edge{Source: source, Target: target})
	s.changed()
}

// SelectNode changes the selection. Selection is ephemeral, not undoable
// content, so no checkpoint is recorded. Pass "" to clear. Selecting an id
// that is not on the board clears instead.
func (s *Store) SelectNode(id string) {
	if id != "" && !s.board.HasNode(id) {
		id = ""
	}
	if s.board.Selected != id {
		s.dragging = ""
	}
	s.board.Selected = id
}

// Undo restores the most recent past snapshot. With no history it is a
// no-op. Selection survives undo/redo but is cleared if the restored board
// no longer has the selected node.
func (s *Store) Undo() {
	if prev := s.history.Undo(s.board); prev != nil {
		s.restore(prev)
	}
}

// Redo reapplies the most recently undone snapshot. With no redo states it
// is a no-op.
func (s *Store) Redo() {
	if next := s.history.Redo(s.board); next != nil {
		s.restore(next)
	}
}

func (s *Store) restore(b *board.Board) {
	selected := s.board.Selected
	s.dragging = ""
	s.board = b
	if selected != "" && !b.HasNode(selected) {
		selected = ""
	}
	s.board.Selected = selected
	s.changed()
}

// checkpoint records the pre-mutation state and closes any open move
// gesture so the next drag starts a fresh one.
func (s *Store) checkpoint() {
	s.dragging = ""
	s.history.Checkpoint(s.board)
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange(s.board)
	}
}
