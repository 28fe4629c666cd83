package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"antiques-backend/internal/infrastructure/storage"
	"antiques-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// ImageHandler exposes the image store over HTTP: batch uploads, single-file
// deletion, and per-item listings.
type ImageHandler struct {
	store *storage.DiskImageStore
}

func NewImageHandler(store *storage.DiskImageStore) *ImageHandler {
	return &ImageHandler{store: store}
}

type deleteImageRequest struct {
	Path string `json:"path"`
}

// Upload handles POST /api/upload-item-images (multipart form: itemId plus
// one or more files under any field name). Per-file failures are reported
// inline; the batch itself always succeeds.
func (h *ImageHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Invalid multipart form")
		return
	}

	itemID := strings.TrimSpace(c.PostForm("itemId"))
	if itemID == "" {
		response.BadRequest(c, "Item ID is required")
		return
	}

	var files []*multipart.FileHeader
	for _, headers := range form.File {
		files = append(files, headers...)
	}

	if err := h.store.EnsureItemDir(itemID); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	uploaded, failed := h.store.SaveUploadedFiles(itemID, files, requestBaseURL(c))
	if uploaded == nil {
		uploaded = []storage.UploadResult{}
	}
	if failed == nil {
		failed = []storage.UploadResult{}
	}

	response.OK(c, http.StatusOK, gin.H{
		"images":       uploaded,
		"errors":       failed,
		"totalFiles":   len(files),
		"successCount": len(uploaded),
		"errorCount":   len(failed),
		"itemId":       itemID,
	})
}

// DeleteImage handles POST /api/delete-item-image. The path is checked
// against the item-image root before anything touches the filesystem.
func (h *ImageHandler) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if req.Path == "" {
		response.BadRequest(c, "Image path is required")
		return
	}

	deleted, err := h.store.DeleteImage(req.Path)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidImagePath), errors.Is(err, storage.ErrNotAFile):
			response.BadRequest(c, err.Error())
		case errors.Is(err, storage.ErrImageNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalServerError(c, err.Error())
		}
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"message":     "Image deleted successfully",
		"deletedPath": deleted,
	})
}

// ListImages handles GET /api/list-item-images?itemId=.
func (h *ImageHandler) ListImages(c *gin.Context) {
	itemID := strings.TrimSpace(c.Query("itemId"))
	if itemID == "" {
		response.BadRequest(c, "Item ID is required")
		return
	}

	images, err := h.store.ListImages(itemID, requestBaseURL(c))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"images": images,
		"count":  len(images),
		"itemId": itemID,
	})
}
