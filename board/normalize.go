package board

// Normalize repairs a board loaded from an external snapshot so that the
// engine's invariants hold: the node map is non-nil, node IDs match their
// map keys, every edge references two distinct existing nodes, and the
// selection points at a node that exists. Duplicate edges are collapsed.
func (b *Board) Normalize() {
	if b.Nodes == nil {
		b.Nodes = make(map[string]*Node)
	}

	for id, node := range b.Nodes {
		if node == nil {
			delete(b.Nodes, id)
			continue
		}
		node.ID = id
	}

	seen := make(map[Edge]bool, len(b.Edges))
	kept := b.Edges[:0]
	for _, e := range b.Edges {
		if e.Source == e.Target || seen[e] {
			continue
		}
		if !b.HasNode(e.Source) || !b.HasNode(e.Target) {
			continue
		}
		seen[e] = true
		kept = append(kept, e)
	}
	b.Edges = kept

	if b.Selected != "" && !b.HasNode(b.Selected) {
		b.Selected = ""
	}
}
