package editor

import (
	"github.com/gdamore/tcell/v2"
)

// Dispatcher routes global keyboard shortcuts to store operations:
//
//	Ctrl+Z                undo
//	Ctrl+Shift+Z, Ctrl+Y  redo
//	Delete, Backspace     remove the selected node
//
// A dispatcher is bound for the lifetime of the active board view and
// released on teardown; exactly one binding is active at a time and
// binding twice is guarded against. While keyboard focus is inside a text
// entry surface the dispatcher consumes nothing, deferring entirely to
// text editing.
type Dispatcher struct {
	store       *Store
	textFocused func() bool
	bound       bool
}

// NewDispatcher creates a dispatcher over the store. textFocused reports
// whether a text entry surface currently has focus; it is checked before
// the routing table on every key event. It may be nil when the surface
// has no text entry.
func NewDispatcher(store *Store, textFocused func() bool) *Dispatcher {
	return &Dispatcher{store: store, textFocused: textFocused}
}

// Bind activates the dispatcher. Returns false if it was already bound.
func (d *Dispatcher) Bind() bool {
	if d.bound {
		return false
	}
	d.bound = true
	return true
}

// Release deactivates the dispatcher. Safe to call when not bound.
func (d *Dispatcher) Release() {
	d.bound = false
}

// Bound reports whether the dispatcher is currently active.
func (d *Dispatcher) Bound() bool {
	return d.bound
}

// HandleKey routes one key event. Returns true when the event was consumed
// and must not reach any other handler.
func (d *Dispatcher) HandleKey(ev *tcell.EventKey) bool {
	if !d.bound || ev == nil {
		return false
	}
	if d.textFocused != nil && d.textFocused() {
		return false
	}

	switch {
	case isUndoKey(ev):
		d.store.Undo()
		return true

	case isRedoKey(ev):
		d.store.Redo()
		return true

	case ev.Key() == tcell.KeyDelete || ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2:
		if id := d.store.SelectedNode(); id != "" {
			d.store.RemoveNode(id)
			return true
		}
	}

	return false
}

func isUndoKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlZ && ev.Modifiers()&tcell.ModShift == 0
}

func isRedoKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlY {
		return true
	}
	return ev.Key() == tcell.KeyCtrlZ && ev.Modifiers()&tcell.ModShift != 0
}
