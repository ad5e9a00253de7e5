// Package canvas renders a board on a tcell screen and feeds user input
// into the document engine. It is the engine's canvas collaborator: it
// owns pan state and the screen-to-board coordinate mapping, and the
// engine owns everything else.
package canvas

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"ideaboard/board"
	"ideaboard/editor"
)

const (
	nodeHeight = 3
	nodePad    = 2 // horizontal padding inside the box
)

// View is an interactive full-screen board view.
type View struct {
	screen tcell.Screen
	store  *editor.Store
	keys   *editor.Dispatcher
	log    *zap.Logger

	name          string
	width, height int

	// Board coordinate shown at the top-left cell. One cell is one board
	// unit on both axes.
	panX, panY float64

	// In-place label editing state. While editing, the global shortcut
	// dispatcher is guarded off.
	editing    bool
	editNode   string
	textBuffer []rune
	cursorPos  int

	// Mouse drag state
	dragNode string
	grabDX   float64
	grabDY   float64

	// Pending edge source, set by 'c' on a selected node
	connectFrom string

	status string
	quit   bool
}

// NewView creates a view over an initialized screen. The dispatcher is
// created here so its binding lifetime matches the view's run loop.
func NewView(screen tcell.Screen, store *editor.Store, log *zap.Logger, name string) *View {
	v := &View{
		screen: screen,
		store:  store,
		log:    log,
		name:   name,
	}
	v.keys = editor.NewDispatcher(store, v.TextFocused)
	v.width, v.height = screen.Size()
	store.SetViewport(v)
	return v
}

// ViewportCenter returns the board coordinate in the middle of the screen.
func (v *View) ViewportCenter() board.Position {
	return board.Position{
		X: v.panX + float64(v.width)/2,
		Y: v.panY + float64(v.height)/2,
	}
}

// ScreenToBoard converts a screen cell to a board coordinate.
func (v *View) ScreenToBoard(x, y int) board.Position {
	return board.Position{X: v.panX + float64(x), Y: v.panY + float64(y)}
}

// TextFocused reports whether in-place label editing is active.
func (v *View) TextFocused() bool {
	return v.editing
}

// Run drives the event loop until the user quits. The keyboard dispatcher
// is bound for exactly the duration of the loop.
func (v *View) Run() error {
	if !v.keys.Bind() {
		return fmt.Errorf("board view already running")
	}
	defer v.keys.Release()

	v.screen.EnableMouse()
	defer v.screen.DisableMouse()

	v.log.Debug("board view opened", zap.String("board", v.name))
	defer v.log.Debug("board view closed", zap.String("board", v.name))

	for !v.quit {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.width, v.height = ev.Size()
			v.screen.Sync()
		case *tcell.EventKey:
			v.handleKey(ev)
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case nil:
			return nil
		}
	}
	return nil
}

func (v *View) handleKey(ev *tcell.EventKey) {
	if v.editing {
		v.handleEditKey(ev)
		return
	}

	// Global shortcuts first: undo/redo/delete
	if v.keys.HandleKey(ev) {
		return
	}

	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		if ev.Key() == tcell.KeyEscape && v.connectFrom != "" {
			v.connectFrom = ""
			v.status = ""
			return
		}
		if ev.Key() == tcell.KeyCtrlC {
			v.quit = true
		}
		return
	case tcell.KeyUp:
		v.panY--
		return
	case tcell.KeyDown:
		v.panY++
		return
	case tcell.KeyLeft:
		v.panX -= 2
		return
	case tcell.KeyRight:
		v.panX += 2
		return
	case tcell.KeyTab:
		v.selectNext()
		return
	case tcell.KeyEnter:
		v.startEdit()
		return
	}

	switch ev.Rune() {
	case 'q':
		v.quit = true
	case 'n':
		id := v.store.CreateNode()
		v.store.SelectNode(id)
		v.startEdit()
	case 'e':
		v.startEdit()
	case 'c':
		if id := v.store.SelectedNode(); id != "" {
			v.connectFrom = id
			v.status = "connect: pick a target node"
		}
	}
}

func (v *View) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter:
		v.commitEdit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if v.cursorPos > 0 {
			v.textBuffer = append(v.textBuffer[:v.cursorPos-1], v.textBuffer[v.cursorPos:]...)
			v.cursorPos--
		}
	case tcell.KeyLeft:
		if v.cursorPos > 0 {
			v.cursorPos--
		}
	case tcell.KeyRight:
		if v.cursorPos < len(v.textBuffer) {
			v.cursorPos++
		}
	case tcell.KeyRune:
		r := ev.Rune()
		v.textBuffer = append(v.textBuffer[:v.cursorPos],
			append([]rune{r}, v.textBuffer[v.cursorPos:]...)...)
		v.cursorPos++
	}
}

func (v *View) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.Button1 != 0 && v.dragNode == "":
		id := v.nodeAt(x, y)
		v.selectTarget(id)
		if id != "" {
			pos := v.store.Board().Nodes[id].Position
			at := v.ScreenToBoard(x, y)
			v.dragNode = id
			v.grabDX = at.X - pos.X
			v.grabDY = at.Y - pos.Y
		}

	case buttons&tcell.Button1 != 0 && v.dragNode != "":
		at := v.ScreenToBoard(x, y)
		v.store.MoveNode(v.dragNode, board.Position{X: at.X - v.grabDX, Y: at.Y - v.grabDY})

	case buttons == tcell.ButtonNone && v.dragNode != "":
		v.store.EndMove()
		v.dragNode = ""
	}
}

// selectTarget routes a picked node: normally it just becomes the
// selection, but with a pending connect source it becomes the edge target.
func (v *View) selectTarget(id string) {
	if v.connectFrom != "" && id != "" && id != v.connectFrom {
		v.store.AddEdge(v.connectFrom, id)
		v.connectFrom = ""
		v.status = ""
	}
	v.store.SelectNode(id)
}

// selectNext cycles the selection through nodes in stable position order.
func (v *View) selectNext() {
	ids := v.sortedIDs()
	if len(ids) == 0 {
		return
	}

	current := v.store.SelectedNode()
	next := ids[0]
	for i, id := range ids {
		if id == current && i+1 < len(ids) {
			next = ids[i+1]
			break
		}
	}
	v.selectTarget(next)
}

func (v *View) sortedIDs() []string {
	b := v.store.Board()
	ids := make([]string, 0, len(b.Nodes))
	for id := range b.Nodes {
		ids = append(ids, id)
	}
	// Order by position so Tab walks the board visually
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0; j-- {
			a, c := b.Nodes[ids[j-1]], b.Nodes[ids[j]]
			if c.Position.Y < a.Position.Y ||
				(c.Position.Y == a.Position.Y && c.Position.X < a.Position.X) {
				ids[j-1], ids[j] = ids[j], ids[j-1]
			}
		}
	}
	return ids
}

func (v *View) startEdit() {
	id := v.store.SelectedNode()
	if id == "" {
		return
	}
	node := v.store.Board().Nodes[id]
	v.editing = true
	v.editNode = id
	v.textBuffer = []rune(node.Label)
	v.cursorPos = len(v.textBuffer)
}

func (v *View) commitEdit() {
	label := string(v.textBuffer)
	v.editing = false
	v.textBuffer = nil
	v.cursorPos = 0

	// The node may have been removed while the editor was open
	if v.editNode != "" {
		v.store.UpdateNodeContent(v.editNode, board.ContentPatch{Label: &label})
	}
	v.editNode = ""
}

// nodeAt returns the id of the node whose box covers the screen cell, or
// "". Later nodes win on overlap, matching draw order.
func (v *View) nodeAt(x, y int) string {
	at := v.ScreenToBoard(x, y)
	var hit string
	for _, id := range v.sortedIDs() {
		node := v.store.Board().Nodes[id]
		w := float64(boxWidth(node))
		if at.X >= node.Position.X && at.X < node.Position.X+w &&
			at.Y >= node.Position.Y && at.Y < node.Position.Y+nodeHeight {
			hit = id
		}
	}
	return hit
}

func boxWidth(n *board.Node) int {
	return len([]rune(displayLabel(n))) + 2*nodePad
}

func displayLabel(n *board.Node) string {
	if n.Label == "" {
		return " "
	}
	return n.Label
}
