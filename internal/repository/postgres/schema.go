package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the items table and its per-kind partitions if
// they do not exist. The table is LIST-partitioned by kind with the
// partition value part of the primary key, so a point read without the
// right kind misses — which is exactly the addressing model the store
// contract exposes (see ItemStore.GetByID and its fallback probe).
//
// Safe to run on every startup; all statements are IF NOT EXISTS.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id         TEXT NOT NULL,
				kind       TEXT NOT NULL,
				name       TEXT NOT NULL,
				parent_id  TEXT,
				path       TEXT NOT NULL,
				x          DOUBLE PRECISION NOT NULL DEFAULT 0,
				y          DOUBLE PRECISION NOT NULL DEFAULT 0,
				content    TEXT NOT NULL DEFAULT '',
				mime_type  TEXT NOT NULL DEFAULT '',
				size       BIGINT NOT NULL DEFAULT 0,
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (kind, id)
			) PARTITION BY LIST (kind)
		`, tables.Items),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s_folder PARTITION OF %s FOR VALUES IN ('folder')
		`, tables.Items, tables.Items),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s_file PARTITION OF %s FOR VALUES IN ('file')
		`, tables.Items, tables.Items),
		fmt.Sprintf(`
			CREATE INDEX IF NOT EXISTS %s_parent_id_idx ON %s (parent_id)
		`, tables.Items, tables.Items),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ClearItems removes every item. Used by the seed command; refuses
// nothing here, the caller gates on environment.
func ClearItems(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	if _, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", tables.Items)); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	return nil
}
