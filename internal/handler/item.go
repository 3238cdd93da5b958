package handler

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Yvaloski/MyDeskApp/internal/config"
	"github.com/Yvaloski/MyDeskApp/internal/domain/models"
	desktopSvc "github.com/Yvaloski/MyDeskApp/internal/domain/services/desktop"
	"github.com/Yvaloski/MyDeskApp/internal/httputil"
)

// ItemHandler handles item HTTP requests
type ItemHandler struct {
	items  desktopSvc.ItemService
	logger *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(items desktopSvc.ItemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		items:  items,
		logger: logger,
	}
}

// createFileRequest is the inline (JSON) file creation body. Content is
// the raw text payload; the service handles encoding at rest.
type createFileRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId,omitempty"`
	Content  string  `json:"content,omitempty"`
	MimeType string  `json:"mimeType,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
}

type positionRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type renameRequest struct {
	NewName string `json:"newName"`
}

type moveRequest struct {
	TargetParentID *string `json:"targetParentId"`
}

// ListItems returns every item with x/y defaulted
// GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListItems(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	httputil.RespondList(w, http.StatusOK, len(items), struct {
		Items []models.Item `json:"items"`
	}{Items: items})
}

// GetItem returns a single item
// GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.items.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, struct {
		Item *models.Item `json:"item"`
	}{Item: item})
}

// CreateFolder creates a new folder
// POST /items/folders
func (h *ItemHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req desktopSvc.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	folder, err := h.items.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, struct {
		Folder *models.Item `json:"folder"`
	}{Folder: folder})
}

// CreateFile creates a file from an inline JSON body
// POST /items/files/create
func (h *ItemHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req createFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := h.items.CreateFile(r.Context(), &desktopSvc.CreateFileRequest{
		Name:     req.Name,
		ParentID: req.ParentID,
		Content:  []byte(req.Content),
		MimeType: req.MimeType,
		X:        req.X,
		Y:        req.Y,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, struct {
		File *models.Item `json:"file"`
	}{File: file})
}

// UploadFile creates a file from a multipart upload. The form carries a
// single "file" field plus an optional parentId.
// POST /items/files
func (h *ItemHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, "invalid multipart form or file too large")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer part.Close()

	content, err := io.ReadAll(io.LimitReader(part, config.MaxUploadBytes+1))
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}
	if len(content) > config.MaxUploadBytes {
		httputil.RespondFail(w, http.StatusBadRequest, "file exceeds the 10 MB upload limit")
		return
	}

	var parentID *string
	if v := r.FormValue("parentId"); v != "" {
		parentID = &v
	}

	file, err := h.items.CreateFile(r.Context(), &desktopSvc.CreateFileRequest{
		Name:     header.Filename,
		ParentID: parentID,
		Content:  content,
		MimeType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, struct {
		File *models.Item `json:"file"`
	}{File: file})
}

// GetDirectory lists a folder's contents. The parent comes from the
// path, the parentId query parameter, or defaults to root.
// GET /items/directory and GET /items/directory/{parentId}
func (h *ItemHandler) GetDirectory(w http.ResponseWriter, r *http.Request) {
	var parentID *string
	if id := r.PathValue("parentId"); id != "" {
		parentID = &id
	} else if id := r.URL.Query().Get("parentId"); id != "" {
		parentID = &id
	}

	contents, err := h.items.ListChildren(r.Context(), parentID)
	if err != nil {
		handleError(w, err)
		return
	}
	if contents == nil {
		contents = []models.Item{}
	}

	httputil.RespondList(w, http.StatusOK, len(contents), struct {
		Contents []models.Item `json:"contents"`
	}{Contents: contents})
}

// DownloadFile streams a file's decoded content
// GET /items/files/{fileId}/download
func (h *ItemHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	download, err := h.items.FileContent(r.Context(), r.PathValue("fileId"))
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", download.MimeType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(download.Content)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(download.Content)
}

// UpdatePosition patches an item's desktop coordinates
// PATCH /items/{id}/position
func (h *ItemHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.X == nil || req.Y == nil {
		httputil.RespondFail(w, http.StatusBadRequest, "x and y coordinates are required")
		return
	}

	item, err := h.items.UpdatePosition(r.Context(), r.PathValue("id"), *req.X, *req.Y)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, struct {
		Item *models.Item `json:"item"`
	}{Item: item})
}

// RenameItem renames an item and cascades paths
// PATCH /items/{id}/rename
func (h *ItemHandler) RenameItem(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.NewName == "" {
		httputil.RespondFail(w, http.StatusBadRequest, "newName is required")
		return
	}

	item, err := h.items.Rename(r.Context(), r.PathValue("id"), req.NewName)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, struct {
		Item *models.Item `json:"item"`
	}{Item: item})
}

// MoveItem reparents an item; null or omitted target means root
// PATCH /items/{id}/move
func (h *ItemHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondFail(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.items.Move(r.Context(), r.PathValue("id"), req.TargetParentID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, struct {
		Item *models.Item `json:"item"`
	}{Item: item})
}

// DeleteItem removes an item and its entire subtree. Idempotent: an id
// that is already gone still reports success.
// DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.items.DeleteRecursive(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, nil)
}

// HealthCheck reports liveness
// GET /health
func (h *ItemHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondSuccess(w, http.StatusOK, struct {
		Healthy bool `json:"healthy"`
	}{Healthy: true})
}
