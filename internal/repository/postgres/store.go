package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yvaloski/MyDeskApp/internal/domain"
	"github.com/Yvaloski/MyDeskApp/internal/domain/models"
	"github.com/Yvaloski/MyDeskApp/internal/domain/repositories"
)

const itemColumns = "id, kind, name, parent_id, path, x, y, content, mime_type, size, created_at, updated_at"

// PostgresItemStore implements the ItemStore interface on a flat,
// LIST-partitioned items table. Point reads address a single partition
// via the (kind, id) primary key.
type PostgresItemStore struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewItemStore creates a new postgres item store
func NewItemStore(config *StoreConfig) repositories.ItemStore {
	return &PostgresItemStore{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new item
func (s *PostgresItemStore) Create(ctx context.Context, item *models.Item) error {
	now := time.Now().UTC()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = now
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, s.tables.Items, itemColumns)

	_, err := s.pool.Exec(ctx, query,
		item.ID,
		item.Kind,
		item.Name,
		item.ParentID,
		item.Path,
		item.X,
		item.Y,
		item.Content,
		item.MimeType,
		item.Size,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		if IsPgDuplicateError(err) {
			return fmt.Errorf("item %s: %w", item.ID, domain.ErrConflict)
		}
		return s.wrapStoreError("create item", err)
	}

	return nil
}

// GetByID retrieves an item by id. With the zero hint the partition is
// derived from the id prefix and the other partition is probed on a
// miss; with an explicit hint only that partition is consulted.
func (s *PostgresItemStore) GetByID(ctx context.Context, id string, hint models.Kind) (*models.Item, error) {
	if hint != "" {
		return s.getInPartition(ctx, id, hint)
	}

	first := s.partitionCandidate(id)
	item, err := s.getInPartition(ctx, id, first)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	// The id prefix is a weak signal: probe the other partition before
	// giving up.
	return s.getInPartition(ctx, id, models.AlternateKind(first))
}

func (s *PostgresItemStore) getInPartition(ctx context.Context, id string, kind models.Kind) (*models.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE kind = $1 AND id = $2
	`, itemColumns, s.tables.Items)

	item, err := scanItem(s.pool.QueryRow(ctx, query, kind, id))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
		}
		return nil, s.wrapStoreError("get item", err)
	}
	return item, nil
}

// Update is a read-modify-write: load the current item (discovering its
// partition if needed), apply the typed patch, stamp updated_at and
// write the whole row back. Last-writer-wins under concurrency.
func (s *PostgresItemStore) Update(ctx context.Context, id string, hint models.Kind, patch models.Patch) (*models.Item, error) {
	item, err := s.GetByID(ctx, id, hint)
	if err != nil {
		return nil, err
	}

	patch.Apply(item)
	item.UpdatedAt = time.Now().UTC()

	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $3, parent_id = $4, path = $5, x = $6, y = $7,
		    content = $8, mime_type = $9, size = $10, updated_at = $11
		WHERE kind = $1 AND id = $2
	`, s.tables.Items)

	tag, err := s.pool.Exec(ctx, query,
		item.Kind,
		item.ID,
		item.Name,
		item.ParentID,
		item.Path,
		item.X,
		item.Y,
		item.Content,
		item.MimeType,
		item.Size,
		item.UpdatedAt,
	)
	if err != nil {
		return nil, s.wrapStoreError("update item", err)
	}
	if tag.RowsAffected() == 0 {
		// Deleted between read and write
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
	}

	return item, nil
}

// Delete removes an item, probing the alternate partition when the
// caller could not supply the kind.
func (s *PostgresItemStore) Delete(ctx context.Context, id string, hint models.Kind) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE kind = $1 AND id = $2`, s.tables.Items)

	if hint != "" {
		tag, err := s.pool.Exec(ctx, query, hint, id)
		if err != nil {
			return s.wrapStoreError("delete item", err)
		}
		if tag.RowsAffected() == 0 {
			return &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
		}
		return nil
	}

	first := s.partitionCandidate(id)
	tag, err := s.pool.Exec(ctx, query, first, id)
	if err != nil {
		return s.wrapStoreError("delete item", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	tag, err = s.pool.Exec(ctx, query, models.AlternateKind(first), id)
	if err != nil {
		return s.wrapStoreError("delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Message: fmt.Sprintf("item %s not found", id)}
	}
	return nil
}

// Query returns all items matching the filter. Root filtering relies on
// parent_id IS NULL covering both the JSON-null and field-absent root
// markers legacy documents may carry.
func (s *PostgresItemStore) Query(ctx context.Context, filter repositories.ItemFilter) ([]models.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, itemColumns, s.tables.Items)
	var args []interface{}

	where := ""
	switch {
	case filter.Root:
		where = " WHERE parent_id IS NULL"
	case filter.ParentID != nil:
		args = append(args, *filter.ParentID)
		where = fmt.Sprintf(" WHERE parent_id = $%d", len(args))
	}

	if len(filter.Kinds) > 0 {
		kinds := make([]string, len(filter.Kinds))
		for i, k := range filter.Kinds {
			kinds[i] = string(k)
		}
		args = append(args, kinds)
		clause := fmt.Sprintf("kind = ANY($%d)", len(args))
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	rows, err := s.pool.Query(ctx, query+where, args...)
	if err != nil {
		return nil, s.wrapStoreError("query items", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, s.wrapStoreError("scan item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrapStoreError("query items", err)
	}

	return items, nil
}

// partitionCandidate derives the first partition to try for an id.
// Unknown prefixes start with the folder partition.
func (s *PostgresItemStore) partitionCandidate(id string) models.Kind {
	if kind, ok := models.KindFromID(id); ok {
		return kind
	}
	return models.KindFolder
}

func (s *PostgresItemStore) wrapStoreError(op string, err error) error {
	if IsPgTransientError(err) {
		s.logger.Warn("transient store failure", "op", op, "error", err)
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrTransient)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanItem(row pgx.Row) (*models.Item, error) {
	var item models.Item
	err := row.Scan(
		&item.ID,
		&item.Kind,
		&item.Name,
		&item.ParentID,
		&item.Path,
		&item.X,
		&item.Y,
		&item.Content,
		&item.MimeType,
		&item.Size,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
