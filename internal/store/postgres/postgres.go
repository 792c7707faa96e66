// Package postgres is the production store driver, backed by the pgx stdlib
// adapter. Schema setup is handled by deploy-time migrations; Bootstrap only
// verifies connectivity.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/slideai/slideai-server/internal/model"
	"github.com/slideai/slideai-server/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New constructs a postgres-backed store from an open database handle.
func New(db *sql.DB) store.Store { return &pgStore{db: db} }

// Bootstrap performs a connectivity check to ensure Postgres is reachable.
func Bootstrap(ctx context.Context, dsn string) error {
	if dsn == "" {
		return nil
	}
	db, err := Open(dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return db.PingContext(ctx)
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Presentations() store.Presentations { return &presentations{db: s.db} }

func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *pgStore) Close() error { return s.db.Close() }

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
        VALUES ($1,$2,$3,$4,$5,$6)
        ON CONFLICT (presentation_id) DO UPDATE SET
            title=EXCLUDED.title,
            document=EXCLUDED.document,
            updated_at=EXCLUDED.updated_at
        WHERE presentations.owner_id=EXCLUDED.owner_id
    `, out.ID, ownerID, out.Title, doc, out.CreatedAt, out.UpdatedAt)
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
	var doc []byte
	row := r.db.QueryRowContext(ctx, `
        SELECT document FROM presentations
        WHERE presentation_id=$1 AND owner_id=$2
    `, presentationID, ownerID)
	if err := row.Scan(&doc); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	var out model.Presentation
	if err := json.Unmarshal(doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *presentations) List(ctx context.Context, ownerID string) ([]*model.Presentation, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT document FROM presentations
        WHERE owner_id=$1
        ORDER BY updated_at DESC
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []*model.Presentation
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var p model.Presentation
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *presentations) Delete(ctx context.Context, ownerID, presentationID string) error {
	res, err := r.db.ExecContext(ctx, `
        DELETE FROM presentations WHERE presentation_id=$1 AND owner_id=$2
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
