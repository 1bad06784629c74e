package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/polkiloo/suitopia/internal/storage"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage keeps documents as JSONB rows and records every revision.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	st := &Storage{pool: pool, logger: logger}
	if err := st.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return st, nil
}

// Close releases database resources.
func (s *Storage) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// HealthCheck pings the database.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
            name TEXT PRIMARY KEY,
            body JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS document_revisions (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            body JSONB NOT NULL,
            written_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_document_revisions_name ON document_revisions(name, written_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// WithinTransaction executes fn inside a transaction.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

// Read loads the named document into dst.
func (s *Storage) Read(ctx context.Context, name string, dst any) error {
	const query = `SELECT body FROM documents WHERE name=$1`
	var body []byte
	if err := s.pool.QueryRow(ctx, query, name).Scan(&body); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return storage.ErrDocumentMissing
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Write upserts the named document and appends a revision row.
func (s *Storage) Write(ctx context.Context, name string, src any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	body := string(data)

	return s.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const upsert = `INSERT INTO documents (name, body, updated_at) VALUES ($1, $2, NOW())
            ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`
		if _, err := tx.Exec(ctx, upsert, name, body); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		const revision = `INSERT INTO document_revisions (name, body) VALUES ($1, $2)`
		if _, err := tx.Exec(ctx, revision, name, body); err != nil {
			return fmt.Errorf("record revision %s: %w", name, err)
		}
		return nil
	})
}

var _ storage.DocumentStore = (*Storage)(nil)
