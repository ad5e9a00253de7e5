package editor

import (
	"ideaboard/board"
)

// Viewport is the canvas collaborator: it maps screen coordinates to board
// space and reports where the user is currently looking. A store without a
// viewport falls back to a fixed default position for placement, so the
// engine works headless (tests, scripted imports).
type Viewport interface {
	ViewportCenter() board.Position
	ScreenToBoard(x, y int) board.Position
}
