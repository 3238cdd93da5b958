package repositories

import (
	"context"

	"github.com/Yvaloski/MyDeskApp/internal/domain/models"
)

// ItemFilter is the simple equality predicate the store understands.
// Exactly one of Root/ParentID should be set for parent filtering; a
// zero filter matches every item.
type ItemFilter struct {
	// Root matches root-level items. The store must treat a NULL
	// parent and an absent parent as the same root marker.
	Root bool

	// ParentID matches items whose parent equals the given id.
	ParentID *string

	// Kinds restricts results to the given partitions. Empty means both.
	Kinds []models.Kind
}

// ItemStore wraps create/read/update/delete/query against the flat,
// partitioned item collection. The store only understands documents
// keyed by (kind, id); it knows nothing about the tree.
//
// The hint parameter on reads and deletes is the partition value when
// the caller knows it. Callers that only hold an id pass the zero Kind
// and the store derives a candidate from the id's kind prefix, probing
// the other partition before giving up (a weak-signal compatibility
// contract; see KindFromID).
type ItemStore interface {
	// Create inserts a new item. The caller pre-assigns ID and Kind;
	// the store stamps CreatedAt/UpdatedAt when unset.
	Create(ctx context.Context, item *models.Item) error

	// GetByID returns the item or ErrNotFound.
	GetByID(ctx context.Context, id string, hint models.Kind) (*models.Item, error)

	// Update is a read-modify-write: fetch the current item, apply the
	// patch, stamp UpdatedAt, write back. ErrNotFound if absent. Two
	// concurrent updates to the same item are last-writer-wins.
	Update(ctx context.Context, id string, hint models.Kind, patch models.Patch) (*models.Item, error)

	// Delete removes the item, ErrNotFound if absent. Callers running
	// recursive deletes must treat "already gone" as success: a probe
	// with the wrong guessed partition is indistinguishable from a
	// concurrent delete having won the race.
	Delete(ctx context.Context, id string, hint models.Kind) error

	// Query returns all items matching the filter, unordered. No
	// pagination; the full list is materialized.
	Query(ctx context.Context, filter ItemFilter) ([]models.Item, error)
}
