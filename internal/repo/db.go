package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shrinkit_go/internal/model"
)

func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConns = 5
	cfg.MinConns = 1
	cfg.MaxConnLifetime = time.Hour
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool: %w", err)
	}
	return pool, nil
}

func Migrate(ctx context.Context, db querier) error {
	_, err := db.Exec(ctx, `
CREATE TABLE IF NOT EXISTS archives (
  id              TEXT PRIMARY KEY,
  name            TEXT NOT NULL,
  original_size   INTEGER NOT NULL,
  compressed_size INTEGER NOT NULL,
  symbols         INTEGER NOT NULL,
  fold_case       BOOLEAN NOT NULL DEFAULT FALSE,
  created_at      TIMESTAMPTZ NOT NULL,
  data            BYTEA NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("migrate archives: %w", err)
	}
	return nil
}

// querier is the part of *pgxpool.Pool the repo needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type archiveRepoPostgres struct {
	db querier
}

func NewArchiveRepoPostgres(db querier) ArchiveRepo {
	return &archiveRepoPostgres{db: db}
}

func (r *archiveRepoPostgres) Save(ctx context.Context, a *model.Archive) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO archives (id, name, original_size, compressed_size, symbols, fold_case, created_at, data)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  original_size = EXCLUDED.original_size,
  compressed_size = EXCLUDED.compressed_size,
  symbols = EXCLUDED.symbols,
  fold_case = EXCLUDED.fold_case,
  data = EXCLUDED.data`,
		a.ID, a.Name, a.OriginalSize, a.CompressedSize, a.Symbols, a.FoldCase, a.CreatedAt, a.Data)
	if err != nil {
		return fmt.Errorf("save archive %s: %w", a.ID, err)
	}
	return nil
}

func (r *archiveRepoPostgres) FindByID(ctx context.Context, id string) (*model.Archive, error) {
	var a model.Archive
	err := r.db.QueryRow(ctx, `
SELECT id, name, original_size, compressed_size, symbols, fold_case, created_at, data
FROM archives WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.OriginalSize, &a.CompressedSize, &a.Symbols, &a.FoldCase, &a.CreatedAt, &a.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find archive %s: %w", id, err)
	}
	return &a, nil
}

func (r *archiveRepoPostgres) List(ctx context.Context) ([]*model.Archive, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, name, original_size, compressed_size, symbols, fold_case, created_at
FROM archives ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}
	defer rows.Close()

	out := make([]*model.Archive, 0)
	for rows.Next() {
		var a model.Archive
		if err := rows.Scan(&a.ID, &a.Name, &a.OriginalSize, &a.CompressedSize, &a.Symbols, &a.FoldCase, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan archive: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *archiveRepoPostgres) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM archives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete archive %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
