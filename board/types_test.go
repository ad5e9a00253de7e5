package board

import (
	"encoding/json"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	b := NewBoard()
	b.Nodes["a"] = &Node{
		ID:       "a",
		Position: Position{X: 10, Y: 20},
		Label:    "first",
		Content:  Content{Text: "hello", Images: []string{"img-1"}},
	}
	b.Nodes["b"] = &Node{ID: "b", Label: "second"}
	b.Edges = append(b.Edges, Edge{Source: "a", Target: "b"})
	b.Selected = "a"

	clone := b.Clone()

	// Mutate the original; the clone must not see any of it
	b.Nodes["a"].Label = "changed"
	b.Nodes["a"].Content.Images[0] = "img-2"
	b.Nodes["a"].Position.X = 99
	b.Edges[0].Target = "a"
	delete(b.Nodes, "b")

	if clone.Nodes["a"].Label != "first" {
		t.Errorf("clone label changed: %q", clone.Nodes["a"].Label)
	}
	if clone.Nodes["a"].Content.Images[0] != "img-1" {
		t.Errorf("clone images alias the original")
	}
	if clone.Nodes["a"].Position.X != 10 {
		t.Errorf("clone position changed: %v", clone.Nodes["a"].Position)
	}
	if clone.Edges[0].Target != "b" {
		t.Errorf("clone edges alias the original")
	}
	if !clone.HasNode("b") {
		t.Error("clone lost node b")
	}
	if clone.Selected != "a" {
		t.Errorf("clone selection = %q, want a", clone.Selected)
	}
}

func TestCloneNil(t *testing.T) {
	var b *Board
	if b.Clone() != nil {
		t.Error("nil board should clone to nil")
	}
}

func TestNormalizeDropsDanglingEdges(t *testing.T) {
	b := NewBoard()
	b.Nodes["a"] = &Node{ID: "a"}
	b.Nodes["b"] = &Node{ID: "b"}
	b.Edges = []Edge{
		{Source: "a", Target: "b"},
		{Source: "a", Target: "gone"},
		{Source: "a", Target: "b"}, // duplicate
		{Source: "a", Target: "a"}, // self loop
	}
	b.Selected = "gone"

	b.Normalize()

	if len(b.Edges) != 1 {
		t.Fatalf("expected 1 edge after normalize, got %d", len(b.Edges))
	}
	if b.Edges[0] != (Edge{Source: "a", Target: "b"}) {
		t.Errorf("wrong surviving edge: %+v", b.Edges[0])
	}
	if b.Selected != "" {
		t.Errorf("selection should be cleared, got %q", b.Selected)
	}
}

func TestNormalizeRepairsNodeIDs(t *testing.T) {
	b := &Board{Nodes: map[string]*Node{"a": {ID: "stale"}, "n": nil}}
	b.Normalize()

	if b.Nodes["a"].ID != "a" {
		t.Errorf("node id not repaired: %q", b.Nodes["a"].ID)
	}
	if _, ok := b.Nodes["n"]; ok {
		t.Error("nil node entry should be dropped")
	}
}

func TestSelectionNotSerialized(t *testing.T) {
	b := NewBoard()
	b.Nodes["a"] = &Node{ID: "a", Label: "x"}
	b.Selected = "a"

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var got Board
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.Selected != "" {
		t.Errorf("selection leaked into the snapshot: %q", got.Selected)
	}
	if got.Nodes["a"].Label != "x" {
		t.Error("node content lost in the snapshot round trip")
	}
}
