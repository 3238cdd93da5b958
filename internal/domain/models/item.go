package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the coarse partition value the item store uses to route
// storage and queries. It never changes after creation.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Item represents a Folder or File node in the desktop namespace tree.
// ParentID is the source of truth for the tree structure; Path is a
// materialized view the service keeps consistent on every structural
// mutation (see the rename/move cascade).
type Item struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"kind"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
	Path     string  `json:"path"`

	// Desktop canvas placement. Purely cosmetic, no bearing on the tree.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// File-only fields. Content is base64-encoded at rest; Size is the
	// byte length of the raw content.
	Content  string `json:"content,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsFolder reports whether the item can be a parent.
func (i *Item) IsFolder() bool {
	return i.Kind == KindFolder
}

// NewItemID assigns a kind-prefixed id. The prefix doubles as a weak
// partition-routing hint for callers that only hold the id (see
// KindFromID); the uuid fragment keeps ids unique under concurrent
// creation within the same millisecond.
func NewItemID(kind Kind) string {
	return fmt.Sprintf("%s-%d-%s", kind, time.Now().UnixMilli(), uuid.NewString()[:8])
}

// KindFromID derives the partition candidate from an id's kind prefix.
// The prefix is a best-effort routing hint, not authoritative: callers
// must fall back to probing the other partition on a miss.
func KindFromID(id string) (Kind, bool) {
	switch {
	case strings.HasPrefix(id, "folder-"):
		return KindFolder, true
	case strings.HasPrefix(id, "file-"):
		return KindFile, true
	default:
		return "", false
	}
}

// AlternateKind returns the other known partition value.
func AlternateKind(kind Kind) Kind {
	if kind == KindFolder {
		return KindFile
	}
	return KindFolder
}
