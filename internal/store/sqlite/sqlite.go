// Package sqlite is the embedded single-node store driver, used for local
// development and tests. Documents are stored as JSON blobs; the relational
// columns exist only for listing and ownership checks.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS presentations (
    presentation_id TEXT PRIMARY KEY,
    owner_id        TEXT NOT NULL,
    title           TEXT NOT NULL,
    document        TEXT NOT NULL,
    created_at      TIMESTAMP NOT NULL,
    updated_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_presentations_owner
    ON presentations (owner_id, updated_at DESC);
`

// Open opens (or creates) a SQLite database at the given path with WAL
// journal mode and applies the schema. Use ":memory:" for tests.
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New constructs a sqlite-backed store from an open database handle.
func New(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Presentations() store.Presentations { return &presentations{db: s.db} }

func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type presentations struct{ db *sql.DB }

func (r *presentations) Save(ctx context.Context, ownerID string, p *model.Presentation) (*model.Presentation, error) {
	out := p.Clone()
	if out.IsNew() {
		out.ID = uuid.NewString()
	}
	doc, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO presentations (presentation_id, owner_id, title, document, created_at, updated_at)
        VALUES (?,?,?,?,?,?)
        ON CONFLICT(presentation_id) DO UPDATE SET
            title=excluded.title,
            document=excluded.document,
            updated_at=excluded.updated_at
        WHERE presentations.owner_id=excluded.owner_id
    `, out.ID, ownerID, out.Title, string(doc), out.CreatedAt, out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// The owner guard turns a cross-owner upsert into zero affected rows;
	// surface that as not-found rather than a silent no-op.
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, model.ErrNotFound
	}
	return out, nil
}

func (r *presentations) Get(ctx context.Context, ownerID, presentationID string) (*model.Presentation, error) {
	var doc string
	row := r.db.QueryRowContext(ctx, `
        SELECT document FROM presentations
        WHERE presentation_id=? AND owner_id=?
    `, presentationID, ownerID)
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	var out model.Presentation
	if err := json.Unmarshal([]byte(doc), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *presentations) List(ctx context.Context, ownerID string) ([]*model.Presentation, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT document FROM presentations
        WHERE owner_id=?
        ORDER BY updated_at DESC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Presentation
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p model.Presentation
		if err := json.Unmarshal([]byte(doc), &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *presentations) Delete(ctx context.Context, ownerID, presentationID string) error {
	res, err := r.db.ExecContext(ctx, `
        DELETE FROM presentations WHERE presentation_id=? AND owner_id=?
    `, presentationID, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
