package desktop

import (
	"context"

	"github.com/Yvaloski/MyDeskApp/internal/domain/models"
)

// ItemService is the hierarchical tree engine. It owns path derivation,
// cascade consistency and cycle prevention; the underlying store only
// sees flat documents.
type ItemService interface {
	// CreateFolder creates a folder under the given parent (nil = root).
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Item, error)

	// CreateFile creates a file with inline content. Content is raw
	// bytes; the service base64-encodes it at rest and records Size.
	CreateFile(ctx context.Context, req *CreateFileRequest) (*models.Item, error)

	// GetItem retrieves a single item by id.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// ListItems returns every item, x/y defaulted.
	ListItems(ctx context.Context) ([]models.Item, error)

	// ListChildren lists a folder's direct children, folders before
	// files, then name ascending. nil parentID lists root items.
	ListChildren(ctx context.Context, parentID *string) ([]models.Item, error)

	// Rename changes an item's name, recomputes its path and cascades
	// the path change to every descendant when the item is a folder.
	Rename(ctx context.Context, id, newName string) (*models.Item, error)

	// Move reparents an item (nil target = root), rejecting moves of a
	// folder into itself or a descendant, and cascades descendant paths.
	Move(ctx context.Context, id string, targetParentID *string) (*models.Item, error)

	// UpdatePosition patches desktop coordinates only.
	UpdatePosition(ctx context.Context, id string, x, y float64) (*models.Item, error)

	// DeleteRecursive deletes an item and its entire subtree, children
	// before the node. Nodes already gone are treated as success.
	DeleteRecursive(ctx context.Context, id string) error

	// FileContent returns a file's decoded content for download.
	FileContent(ctx context.Context, id string) (*FileDownload, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// CreateFileRequest represents a file creation request. Content is the
// raw (decoded) payload regardless of whether it arrived inline or as a
// multipart upload.
type CreateFileRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"`
	Content  []byte  `json:"-"`
	MimeType string  `json:"mimeType,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

// FileDownload is a decoded file payload ready to stream to a client.
type FileDownload struct {
	Name     string
	MimeType string
	Content  []byte
}
