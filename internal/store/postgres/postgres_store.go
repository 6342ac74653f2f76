// Package postgres keeps every collection as a single JSONB document in a
// collections table. It trades the file backend's one-file-per-collection
// layout for transactional writes, keeping the same load/save contract.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Store struct {
	db *sql.DB
}

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the collections table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS collections (
			name       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key string, doc any) error {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM collections WHERE name = $1`, key,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return s.materialize(ctx, key, doc)
	}
	if err != nil {
		return fmt.Errorf("read collection %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("parse collection %s: %w", key, err)
	}
	return nil
}

func (s *Store) Save(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize collection %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}

// materialize persists the caller's default document on first access.
func (s *Store) materialize(ctx context.Context, key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serialize collection %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO collections (name, doc)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`,
		key, data,
	)
	if err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	return nil
}
