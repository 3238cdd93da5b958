package desktop

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Yvaloski/MyDeskApp/internal/config"
	"github.com/Yvaloski/MyDeskApp/internal/domain"
	"github.com/Yvaloski/MyDeskApp/internal/domain/models"
	"github.com/Yvaloski/MyDeskApp/internal/domain/repositories"
	desktopSvc "github.com/Yvaloski/MyDeskApp/internal/domain/services/desktop"
	"github.com/Yvaloski/MyDeskApp/internal/mimetypes"
)

var nameNoSlash = regexp.MustCompile(`^[^/]+$`)

type itemService struct {
	store  repositories.ItemStore
	mimes  *mimetypes.Registry
	logger *slog.Logger
}

// NewItemService creates the item tree engine
func NewItemService(
	store repositories.ItemStore,
	mimes *mimetypes.Registry,
	logger *slog.Logger,
) desktopSvc.ItemService {
	return &itemService{
		store:  store,
		mimes:  mimes,
		logger: logger,
	}
}

// CreateFolder creates a new folder under the given parent
func (s *itemService) CreateFolder(ctx context.Context, req *desktopSvc.CreateFolderRequest) (*models.Item, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}

	parentID := normalizeParent(req.ParentID)
	parentPath, err := s.resolveParentPath(ctx, parentID)
	if err != nil {
		return nil, err
	}

	folder := &models.Item{
		ID:       models.NewItemID(models.KindFolder),
		Kind:     models.KindFolder,
		Name:     req.Name,
		ParentID: parentID,
		Path:     childPath(parentPath, req.Name),
		X:        req.X,
		Y:        req.Y,
	}

	if err := s.store.Create(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"path", folder.Path,
	)

	return folder, nil
}

// CreateFile creates a new file with inline content
func (s *itemService) CreateFile(ctx context.Context, req *desktopSvc.CreateFileRequest) (*models.Item, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateName(req.Name); err != nil {
		return nil, err
	}
	if len(req.Content) > config.MaxUploadBytes {
		return nil, &domain.ValidationError{Message: "file content exceeds the upload limit"}
	}

	parentID := normalizeParent(req.ParentID)
	parentPath, err := s.resolveParentPath(ctx, parentID)
	if err != nil {
		return nil, err
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = s.mimes.ForFilename(req.Name)
	}

	file := &models.Item{
		ID:       models.NewItemID(models.KindFile),
		Kind:     models.KindFile,
		Name:     req.Name,
		ParentID: parentID,
		Path:     childPath(parentPath, req.Name),
		X:        req.X,
		Y:        req.Y,
		Content:  base64.StdEncoding.EncodeToString(req.Content),
		MimeType: mimeType,
		Size:     int64(len(req.Content)),
	}

	if err := s.store.Create(ctx, file); err != nil {
		return nil, err
	}

	s.logger.Info("file created",
		"id", file.ID,
		"name", file.Name,
		"parent_id", file.ParentID,
		"path", file.Path,
		"size", file.Size,
		"mime_type", file.MimeType,
	)

	return file, nil
}

// GetItem retrieves an item by id
func (s *itemService) GetItem(ctx context.Context, id string) (*models.Item, error) {
	return s.store.GetByID(ctx, id, "")
}

// ListItems returns every item in the namespace
func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return s.store.Query(ctx, repositories.ItemFilter{})
}

// ListChildren lists a folder's direct children, folders before files,
// then name ascending. The ordering is a UI convenience this layer
// owns; the store returns rows unordered.
func (s *itemService) ListChildren(ctx context.Context, parentID *string) ([]models.Item, error) {
	parentID = normalizeParent(parentID)

	filter := repositories.ItemFilter{Root: parentID == nil, ParentID: parentID}
	items, err := s.store.Query(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Kind != items[j].Kind {
			return items[i].Kind == models.KindFolder
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// Rename changes an item's name and recomputes its path, cascading the
// path change through the subtree when the item is a folder.
func (s *itemService) Rename(ctx context.Context, id, newName string) (*models.Item, error) {
	newName = strings.TrimSpace(newName)
	if err := validateName(newName); err != nil {
		return nil, err
	}

	item, err := s.store.GetByID(ctx, id, "")
	if err != nil {
		return nil, err
	}

	parentPath, err := s.resolveParentPath(ctx, item.ParentID)
	if err != nil {
		return nil, err
	}

	oldPath := item.Path
	newPath := childPath(parentPath, newName)

	updated, err := s.store.Update(ctx, id, item.Kind, models.RenamePatch{Name: newName, Path: newPath})
	if err != nil {
		return nil, err
	}

	if updated.IsFolder() && oldPath != newPath {
		if err := s.cascadePaths(ctx, updated.ID, updated.Path); err != nil {
			return nil, err
		}
	}

	s.logger.Info("item renamed",
		"id", updated.ID,
		"name", updated.Name,
		"path", updated.Path,
	)

	return updated, nil
}

// Move reparents an item. A nil target moves it to root level.
func (s *itemService) Move(ctx context.Context, id string, targetParentID *string) (*models.Item, error) {
	item, err := s.store.GetByID(ctx, id, "")
	if err != nil {
		return nil, err
	}

	target := normalizeParent(targetParentID)

	// Same parent: no-op
	if equalParent(item.ParentID, target) {
		return item, nil
	}

	var newPath string
	if target != nil {
		tgt, err := s.store.GetByID(ctx, *target, "")
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.NotFoundError{Message: fmt.Sprintf("move target %s not found", *target)}
			}
			return nil, err
		}
		if !tgt.IsFolder() {
			return nil, &domain.InvalidTargetError{Message: "move target must be a folder"}
		}
		if item.IsFolder() {
			if err := s.ensureNoCycle(ctx, item.ID, tgt); err != nil {
				return nil, err
			}
		}
		newPath = childPath(tgt.Path, item.Name)
	} else {
		newPath = childPath("", item.Name)
	}

	oldPath := item.Path

	updated, err := s.store.Update(ctx, id, item.Kind, models.MovePatch{ParentID: target, Path: newPath})
	if err != nil {
		return nil, err
	}

	if updated.IsFolder() && oldPath != newPath {
		if err := s.cascadePaths(ctx, updated.ID, updated.Path); err != nil {
			return nil, err
		}
	}

	s.logger.Info("item moved",
		"id", updated.ID,
		"parent_id", updated.ParentID,
		"path", updated.Path,
	)

	return updated, nil
}

// UpdatePosition patches desktop coordinates. The store discovers the
// partition itself during its read-modify-write; no tree fields move.
func (s *itemService) UpdatePosition(ctx context.Context, id string, x, y float64) (*models.Item, error) {
	updated, err := s.store.Update(ctx, id, "", models.PositionPatch{X: x, Y: y})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("item position updated", "id", id, "x", x, "y", y)

	return updated, nil
}

// DeleteRecursive deletes an item's subtree depth-first, children
// before the node. Nodes found already absent are treated as success:
// overlapping concurrent deletes can reach the same node twice.
func (s *itemService) DeleteRecursive(ctx context.Context, id string) error {
	children, err := s.store.Query(ctx, repositories.ItemFilter{ParentID: &id})
	if err != nil {
		return err
	}

	for _, child := range children {
		if err := s.DeleteRecursive(ctx, child.ID); err != nil {
			return err
		}
	}

	if err := s.store.Delete(ctx, id, ""); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Already gone: a concurrent delete won the race
			s.logger.Debug("item already deleted", "id", id)
			return nil
		}
		return err
	}

	s.logger.Info("item deleted", "id", id, "children", len(children))

	return nil
}

// FileContent returns a file's decoded payload for download
func (s *itemService) FileContent(ctx context.Context, id string) (*desktopSvc.FileDownload, error) {
	item, err := s.store.GetByID(ctx, id, "")
	if err != nil {
		return nil, err
	}
	if item.Kind != models.KindFile {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
	}

	content, err := base64.StdEncoding.DecodeString(item.Content)
	if err != nil {
		return nil, fmt.Errorf("decode file %s content: %w", id, err)
	}

	mimeType := item.MimeType
	if mimeType == "" {
		mimeType = s.mimes.Default()
	}

	return &desktopSvc.FileDownload{
		Name:     item.Name,
		MimeType: mimeType,
		Content:  content,
	}, nil
}

// resolveParentPath loads the parent folder's path, "" for root.
// Fails when the parent is missing or is a file.
func (s *itemService) resolveParentPath(ctx context.Context, parentID *string) (string, error) {
	if parentID == nil {
		return "", nil
	}

	parent, err := s.store.GetByID(ctx, *parentID, "")
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", &domain.NotFoundError{Message: fmt.Sprintf("parent folder %s not found", *parentID)}
		}
		return "", err
	}
	if !parent.IsFolder() {
		return "", &domain.InvalidTargetError{Message: "parent must be a folder"}
	}

	return parent.Path, nil
}

// ensureNoCycle walks the target's ancestor chain; if the moved folder
// appears anywhere in it (including the target itself), the move would
// create a cycle. The walk uses current ancestry, never the cached
// paths.
func (s *itemService) ensureNoCycle(ctx context.Context, movedID string, target *models.Item) error {
	cur := target
	for {
		if cur.ID == movedID {
			return &domain.CyclicMoveError{Message: "cannot move a folder into itself or a descendant"}
		}
		if cur.ParentID == nil {
			return nil
		}

		parent, err := s.store.GetByID(ctx, *cur.ParentID, models.KindFolder)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Broken ancestry chain: nothing above can cycle
				return nil
			}
			return err
		}
		cur = parent
	}
}

// cascadePaths rewrites every descendant's path under the new subtree
// prefix, depth-first. This is a non-transactional multi-document
// rewrite: concurrent readers can observe a half-migrated subtree, and
// a descendant deleted mid-cascade is skipped.
func (s *itemService) cascadePaths(ctx context.Context, folderID, folderPath string) error {
	children, err := s.store.Query(ctx, repositories.ItemFilter{ParentID: &folderID})
	if err != nil {
		return err
	}

	for _, child := range children {
		newPath := folderPath + "/" + child.Name
		if _, err := s.store.Update(ctx, child.ID, child.Kind, models.PathPatch{Path: newPath}); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.logger.Debug("descendant vanished during cascade", "id", child.ID)
				continue
			}
			return fmt.Errorf("cascade path for %s: %w", child.ID, err)
		}
		s.logger.Debug("descendant path updated", "id", child.ID, "path", newPath)

		if child.IsFolder() {
			if err := s.cascadePaths(ctx, child.ID, newPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateName applies the shared item-name rules
func validateName(name string) error {
	err := validation.Validate(name,
		validation.Required,
		validation.Length(1, config.MaxItemNameLength),
		validation.Match(nameNoSlash).Error("name cannot contain slashes"),
	)
	if err != nil {
		return fmt.Errorf("invalid name: %v: %w", err, domain.ErrValidation)
	}
	return nil
}

// normalizeParent treats nil and empty string as the same root marker
func normalizeParent(parentID *string) *string {
	if parentID == nil || *parentID == "" {
		return nil
	}
	return parentID
}

func equalParent(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// childPath derives the materialized path for a child of the folder
// with the given path ("" = root).
func childPath(parentPath, name string) string {
	if parentPath == "" {
		return "/" + name
	}
	return strings.TrimSuffix(parentPath, "/") + "/" + name
}
