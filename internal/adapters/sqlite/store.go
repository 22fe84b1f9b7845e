package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"docshelf/internal/domain"
	"docshelf/internal/ports"
)

const schemaVersion = "1"

// Scheme prefixes a database location, as in sqlite:///srv/library/tree.db
const Scheme = "sqlite://"

// Store keeps a document tree in a SQLite database.
// It is both a snapshot source and a snapshot sink.
type Store struct {
	dbPath string
}

var (
	_ ports.SnapshotSource = (*Store)(nil)
	_ ports.SnapshotSink   = (*Store)(nil)
	_ ports.SnapshotStamp  = (*Store)(nil)
)

// NewStore creates a store backed by the database file at dbPath.
// A sqlite:// prefix and a leading ~ are accepted.
func NewStore(dbPath string) *Store {
	dbPath = strings.TrimPrefix(dbPath, Scheme)
	if strings.HasPrefix(dbPath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			dbPath = filepath.Join(home, dbPath[2:])
		}
	}
	return &Store{dbPath: dbPath}
}

// Location returns the database path
func (s *Store) Location() string {
	return s.dbPath
}

// open connects and makes sure the schema exists
func (s *Store) open(ctx context.Context, create bool) (*sql.DB, error) {
	if create {
		if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	} else if _, err := os.Stat(s.dbPath); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := sql.Open("sqlite3", s.dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS nodes (
			id INTEGER PRIMARY KEY,
			parent_id INTEGER REFERENCES nodes(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			path TEXT NOT NULL,
			extension TEXT
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_nodes_parent ON nodes(parent_id, position);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	return db, nil
}

// Save replaces the stored tree in a single transaction
func (s *Store) Save(ctx context.Context, tree domain.Tree) error {
	db, err := s.open(ctx, true)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	w := &treeWriter{tx: tx}
	if err := w.reset(ctx); err != nil {
		return err
	}
	if err := w.insertLevel(ctx, sql.NullInt64{}, tree.Roots()); err != nil {
		return err
	}
	if err := w.writeMeta(ctx, tree.Count()); err != nil {
		return err
	}

	return tx.Commit()
}

// Load reads the stored tree back, keeping sibling order
func (s *Store) Load(ctx context.Context) (domain.Tree, error) {
	db, err := s.open(ctx, false)
	if err != nil {
		return domain.Tree{}, err
	}
	defer db.Close()

	var version string
	err = db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	if err == sql.ErrNoRows {
		return domain.Tree{}, fmt.Errorf("database %s holds no snapshot", s.dbPath)
	}
	if err != nil {
		return domain.Tree{}, err
	}
	if version != schemaVersion {
		return domain.Tree{}, fmt.Errorf("unsupported schema version %q", version)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, parent_id, name, kind, path, extension
		FROM nodes ORDER BY parent_id, position
	`)
	if err != nil {
		return domain.Tree{}, err
	}
	defer rows.Close()

	children := make(map[int64][]row)
	var roots []row
	for rows.Next() {
		var r row
		var parent sql.NullInt64
		var ext sql.NullString
		if err := rows.Scan(&r.id, &parent, &r.name, &r.kind, &r.path, &ext); err != nil {
			return domain.Tree{}, err
		}
		r.ext = ext.String
		if parent.Valid {
			children[parent.Int64] = append(children[parent.Int64], r)
		} else {
			roots = append(roots, r)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Tree{}, err
	}

	return domain.NewTree(assemble(roots, children)), nil
}

// SavedAt returns when the stored tree was last written
func (s *Store) SavedAt(ctx context.Context) (time.Time, error) {
	db, err := s.open(ctx, false)
	if err != nil {
		return time.Time{}, err
	}
	defer db.Close()

	var value string
	if err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'saved_at'`).Scan(&value); err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, value)
}

type row struct {
	id   int64
	name string
	kind string
	path string
	ext  string
}

func assemble(level []row, children map[int64][]row) []domain.Node {
	nodes := make([]domain.Node, 0, len(level))
	for _, r := range level {
		kind := domain.ParseKind(r.kind)
		n := domain.Node{Name: r.name, Kind: kind, Path: r.path}
		if kind == domain.KindDirectory {
			n.Children = assemble(children[r.id], children)
		} else {
			n.Extension = r.ext
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// treeWriter inserts nodes inside one transaction
type treeWriter struct {
	tx *sql.Tx
}

func (w *treeWriter) reset(ctx context.Context) error {
	_, err := w.tx.ExecContext(ctx, `DELETE FROM nodes; DELETE FROM meta;`)
	if err != nil {
		return fmt.Errorf("failed to clear nodes: %w", err)
	}
	return nil
}

func (w *treeWriter) insertLevel(ctx context.Context, parent sql.NullInt64, nodes []domain.Node) error {
	for i, n := range nodes {
		var ext sql.NullString
		if n.Kind == domain.KindFile {
			ext = sql.NullString{String: n.Extension, Valid: true}
		}

		res, err := w.tx.ExecContext(ctx, `
			INSERT INTO nodes (parent_id, position, name, kind, path, extension)
			VALUES (?, ?, ?, ?, ?, ?)
		`, parent, i, n.Name, n.Kind.String(), n.Path, ext)
		if err != nil {
			return fmt.Errorf("failed to insert %s: %w", n.Path, err)
		}

		if n.Kind != domain.KindDirectory {
			continue
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		if err := w.insertLevel(ctx, sql.NullInt64{Int64: id, Valid: true}, n.Children); err != nil {
			return err
		}
	}
	return nil
}

func (w *treeWriter) writeMeta(ctx context.Context, count int) error {
	_, err := w.tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('saved_at', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('node_count', ?);
	`, schemaVersion, time.Now().UTC().Format(time.RFC3339), strconv.Itoa(count))
	if err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}
