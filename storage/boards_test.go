package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ideaboard/board"
)

func openTestBoards(t *testing.T) *Boards {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "boards.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndList(t *testing.T) {
	s := openTestBoards(t)
	ctx := context.Background()

	first, err := s.Create(ctx, "roadmap")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := s.Create(ctx, "retro")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	boards, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 2)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := openTestBoards(t)
	ctx := context.Background()

	info, err := s.Create(ctx, "ideas")
	require.NoError(t, err)

	b := board.NewBoard()
	b.Nodes["n1"] = &board.Node{
		ID:       "n1",
		Position: board.Position{X: 12.5, Y: -3},
		Label:    "One",
		Content:  board.Content{Text: "body", Images: []string{"pic.png"}},
	}
	b.Nodes["n2"] = &board.Node{ID: "n2", Label: "Two"}
	b.Edges = []board.Edge{{Source: "n1", Target: "n2"}}
	b.Selected = "n1" // transient, must not round trip

	require.NoError(t, s.SaveSnapshot(ctx, info.ID, b))

	got, err := s.LoadSnapshot(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, "One", got.Nodes["n1"].Label)
	assert.Equal(t, board.Position{X: 12.5, Y: -3}, got.Nodes["n1"].Position)
	assert.Equal(t, []string{"pic.png"}, got.Nodes["n1"].Content.Images)
	assert.Len(t, got.Edges, 1)
	assert.Empty(t, got.Selected)
}

func TestLoadNormalizesSnapshot(t *testing.T) {
	s := openTestBoards(t)
	ctx := context.Background()

	info, err := s.Create(ctx, "stale")
	require.NoError(t, err)

	b := board.NewBoard()
	b.Nodes["a"] = &board.Node{ID: "a"}
	b.Edges = []board.Edge{{Source: "a", Target: "removed"}}
	require.NoError(t, s.SaveSnapshot(ctx, info.ID, b))

	got, err := s.LoadSnapshot(ctx, info.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Edges, "dangling edges pruned on load")
}

func TestMissingBoard(t *testing.T) {
	s := openTestBoards(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadSnapshot(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "nope"), ErrNotFound)
	assert.ErrorIs(t, s.Rename(ctx, "nope", "x"), ErrNotFound)
	assert.ErrorIs(t, s.SaveSnapshot(ctx, "nope", board.NewBoard()), ErrNotFound)
}

func TestRenameAndDelete(t *testing.T) {
	s := openTestBoards(t)
	ctx := context.Background()

	info, err := s.Create(ctx, "old")
	require.NoError(t, err)

	require.NoError(t, s.Rename(ctx, info.ID, "new"))
	got, err := s.Get(ctx, info.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)

	require.NoError(t, s.Delete(ctx, info.ID))
	_, err = s.Get(ctx, info.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
