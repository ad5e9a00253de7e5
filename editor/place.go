package editor

import (
	"ideaboard/board"
)

// DefaultPlacementStep is the per-node fan-out distance, in board units,
// used when no explicit step is configured.
const DefaultPlacementStep = 15

// Fallback base position used when no viewport is attached yet.
const (
	defaultBaseX = 250
	defaultBaseY = 150
)

// placement computes where a new node goes when the caller gave no
// position: the viewport center, pushed diagonally by nodeCount*step so
// repeated creations fan out instead of stacking exactly on top of each
// other. This is best effort, not a collision solver; it does not inspect
// existing node bounds.
func (s *Store) placement() board.Position {
	base := board.Position{X: defaultBaseX, Y: defaultBaseY}
	if s.viewport != nil {
		base = s.viewport.ViewportCenter()
	}
	offset := float64(len(s.board.Nodes)) * s.step
	return board.Position{X: base.X + offset, Y: base.Y + offset}
}
