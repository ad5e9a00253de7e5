// Package storage is the persistence bridge: a catalog of boards and their
// latest serialized snapshots, kept in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"ideaboard/board"
)

// ErrNotFound is returned when a board id does not exist in the catalog.
var ErrNotFound = errors.New("board not found")

// BoardInfo describes one stored board.
type BoardInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Boards wraps the board database.
type Boards struct {
	db *sql.DB
}

const schemaDDL = `CREATE TABLE IF NOT EXISTS boards (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  snapshot TEXT NOT NULL
)`

// Open opens the board database at path, creating the file and schema on
// first use.
func Open(path string) (*Boards, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Boards{db: db}, nil
}

// Close closes the underlying database.
func (s *Boards) Close() error {
	return s.db.Close()
}

// Create registers a new empty board under the given name.
func (s *Boards) Create(ctx context.Context, name string) (BoardInfo, error) {
	snapshot, err := json.Marshal(board.NewBoard())
	if err != nil {
		return BoardInfo{}, fmt.Errorf("encoding empty snapshot: %w", err)
	}

	now := time.Now().UTC()
	info := BoardInfo{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO boards (id, name, created_at, updated_at, snapshot) VALUES (?, ?, ?, ?, ?)`,
		info.ID, info.Name, now.Format(time.RFC3339), now.Format(time.RFC3339), string(snapshot))
	if err != nil {
		return BoardInfo{}, fmt.Errorf("inserting board: %w", err)
	}

	return info, nil
}

// List returns all boards, most recently updated first.
func (s *Boards) List(ctx context.Context) ([]BoardInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM boards ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}
	defer rows.Close()

	var boards []BoardInfo
	for rows.Next() {
		info, err := scanInfo(rows.Scan)
		if err != nil {
			return nil, err
		}
		boards = append(boards, info)
	}
	return boards, rows.Err()
}

// Get returns the catalog entry for one board.
func (s *Boards) Get(ctx context.Context, id string) (BoardInfo, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at FROM boards WHERE id = ?`, id)
	info, err := scanInfo(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return BoardInfo{}, ErrNotFound
	}
	return info, err
}

// Rename changes a board's display name.
func (s *Boards) Rename(ctx context.Context, id, name string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE boards SET name = ?, updated_at = ? WHERE id = ?`,
		name, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("renaming board: %w", err)
	}
	return requireRow(res)
}

// Delete removes a board and its snapshot.
func (s *Boards) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM boards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting board: %w", err)
	}
	return requireRow(res)
}

// SaveSnapshot stores the serialized form of a board. Selection is
// transient and never part of the snapshot.
func (s *Boards) SaveSnapshot(ctx context.Context, id string, b *board.Board) error {
	snapshot, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE boards SET snapshot = ?, updated_at = ? WHERE id = ?`,
		string(snapshot), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return requireRow(res)
}

// LoadSnapshot returns a board decoded from its stored snapshot,
// normalized so engine invariants hold even for snapshots written by
// older versions.
func (s *Boards) LoadSnapshot(ctx context.Context, id string) (*board.Board, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM boards WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	var b board.Board
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	b.Normalize()
	return &b, nil
}

func scanInfo(scan func(dest ...any) error) (BoardInfo, error) {
	var info BoardInfo
	var created, updated string
	if err := scan(&info.ID, &info.Name, &created, &updated); err != nil {
		return BoardInfo{}, err
	}

	var err error
	if info.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return BoardInfo{}, fmt.Errorf("parsing created_at: %w", err)
	}
	if info.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return BoardInfo{}, fmt.Errorf("parsing updated_at: %w", err)
	}
	return info, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
