package canvas

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"ideaboard/board"
)

var (
	styleDefault  = tcell.StyleDefault
	styleSelected = tcell.StyleDefault.Bold(true).Reverse(true)
	styleEdge     = tcell.StyleDefault.Dim(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

func (v *View) draw() {
	v.screen.Clear()

	b := v.store.Board()
	for _, e := range b.Edges {
		v.drawEdge(b, e)
	}
	for _, id := range v.sortedIDs() {
		v.drawNode(b.Nodes[id], id == b.Selected)
	}
	v.drawStatus(b)

	if v.editing {
		v.positionCursor(b)
	} else {
		v.screen.HideCursor()
	}

	v.screen.Show()
}

func (v *View) drawNode(n *board.Node, selected bool) {
	sx := int(n.Position.X - v.panX)
	sy := int(n.Position.Y - v.panY)
	w := boxWidth(n)

	style := styleDefault
	if selected {
		style = styleSelected
	}

	label := []rune(displayLabel(n))
	if v.editing && v.editNode == n.ID {
		label = v.textBuffer
		w = len(label) + 2*nodePad
	}

	v.setCell(sx, sy, '┌', style)
	v.setCell(sx+w-1, sy, '┐', style)
	v.setCell(sx, sy+2, '└', style)
	v.setCell(sx+w-1, sy+2, '┘', style)
	for x := sx + 1; x < sx+w-1; x++ {
		v.setCell(x, sy, '─', style)
		v.setCell(x, sy+2, '─', style)
	}
	v.setCell(sx, sy+1, '│', style)
	v.setCell(sx+w-1, sy+1, '│', style)

	for i := 0; i < w-2; i++ {
		r := ' '
		if i >= nodePad-1 && i-nodePad+1 < len(label) {
			r = label[i-nodePad+1]
		}
		v.setCell(sx+1+i, sy+1, r, style)
	}
}

// drawEdge steps a straight line between node centers. Node interiors are
// drawn afterwards so boxes paint over the line ends.
func (v *View) drawEdge(b *board.Board, e board.Edge) {
	from, to := b.Nodes[e.Source], b.Nodes[e.Target]
	if from == nil || to == nil {
		return
	}

	x0 := from.Position.X - v.panX + float64(boxWidth(from))/2
	y0 := from.Position.Y - v.panY + float64(nodeHeight)/2
	x1 := to.Position.X - v.panX + float64(boxWidth(to))/2
	y1 := to.Position.Y - v.panY + float64(nodeHeight)/2

	dx, dy := x1-x0, y1-y0
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		return
	}
	for i := 0.0; i <= steps; i++ {
		x := x0 + dx*i/steps
		y := y0 + dy*i/steps
		v.setCell(int(x), int(y), '·', styleEdge)
	}
}

func (v *View) drawStatus(b *board.Board) {
	past, future := v.store.HistoryDepths()
	text := fmt.Sprintf(" %s · %d nodes · undo %d · redo %d ", v.name, len(b.Nodes), past, future)
	if v.status != "" {
		text += "· " + v.status + " "
	} else if v.editing {
		text += "· editing (enter/esc to save) "
	} else {
		text += "· n new · enter edit · c connect · tab cycle · ^Z undo · q quit "
	}

	y := v.height - 1
	runes := []rune(text)
	for x := 0; x < v.width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
	}
}

func (v *View) positionCursor(b *board.Board) {
	node := b.Nodes[v.editNode]
	if node == nil {
		v.screen.HideCursor()
		return
	}
	sx := int(node.Position.X-v.panX) + nodePad + v.cursorPos
	sy := int(node.Position.Y-v.panY) + 1
	v.screen.ShowCursor(sx, sy)
}

func (v *View) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= v.width || y >= v.height-1 {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}
