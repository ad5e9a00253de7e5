// Package board contains the fundamental types for an ideaboard document.
package board

// Position is a coordinate in board space. Board space is unbounded; the
// canvas decides what part of it is on screen.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Content holds the body of a node: free text plus an ordered list of
// image references.
type Content struct {
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
}

// Node represents one idea on the board.
type Node struct {
	ID        string   `json:"id"`
	Position  Position `json:"position"`
	Label     string   `json:"label"`
	Content   Content  `json:"content"`
	Draggable bool     `json:"draggable"`
}

// Edge connects two nodes by id. Both endpoints must exist in the board
// that owns the edge; deleting a node removes every edge touching it.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Board is the unit of editing: a node map, an edge list and the transient
// selection. Selection is never serialized.
type Board struct {
	Nodes    map[string]*Node `json:"nodes"`
	Edges    []Edge           `json:"edges"`
	Selected string           `json:"-"`
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{
		Nodes: make(map[string]*Node),
	}
}

// HasNode reports whether a node id exists on the board.
func (b *Board) HasNode(id string) bool {
	_, ok := b.Nodes[id]
	return ok
}

// Touches reports whether the edge has the given node as either endpoint.
func (e Edge) Touches(id string) bool {
	return e.Source == id || e.Target == id
}

// Clone creates a deep copy of the board. Snapshots stored in history must
// never alias the live node objects.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}

	clone := &Board{
		Nodes:    make(map[string]*Node, len(b.Nodes)),
		Selected: b.Selected,
	}

	for id, node := range b.Nodes {
		n := *node
		if node.Content.Images != nil {
			n.Content.Images = make([]string, len(node.Content.Images))
			copy(n.Content.Images, node.Content.Images)
		}
		clone.Nodes[id] = &n
	}

	if b.Edges != nil {
		clone.Edges = make([]Edge, len(b.Edges))
		copy(clone.Edges, b.Edges)
	}

	return clone
}

// ContentPatch describes a partial update to a node. Nil fields are left
// untouched; a non-nil Images replaces the whole image list.
type ContentPatch struct {
	Label  *string
	Text   *string
	Images []string
}
