package handler

import (
	"errors"
	"net/http"

	"antiques-backend/internal/domains/metadata/model"
	"antiques-backend/internal/domains/metadata/service"
	"antiques-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type MetadataHandler struct {
	service service.MetadataService
}

func NewMetadataHandler(svc service.MetadataService) *MetadataHandler {
	return &MetadataHandler{service: svc}
}

type entryRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/metadata/:kind.
func (h *MetadataHandler) List(c *gin.Context) {
	kind, err := model.ParseKind(c.Param("kind"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	entries, err := h.service.List(c.Request.Context(), kind)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
		"kind":    kind,
	})
}

// Add handles POST /api/metadata/:kind.
func (h *MetadataHandler) Add(c *gin.Context) {
	kind, err := model.ParseKind(c.Param("kind"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.service.Add(c.Request.Context(), kind, req.Name)
	if err != nil {
		response.Fail(c, statusFor(err), err.Error())
		return
	}

	response.OK(c, http.StatusCreated, gin.H{"entry": entry})
}

// Update handles PUT /api/metadata/:kind/:id.
func (h *MetadataHandler) Update(c *gin.Context) {
	kind, err := model.ParseKind(c.Param("kind"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.service.Update(c.Request.Context(), kind, c.Param("id"), req.Name)
	if err != nil {
		response.Fail(c, statusFor(err), err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{"entry": entry})
}

// Delete handles DELETE /api/metadata/:kind/:id.
func (h *MetadataHandler) Delete(c *gin.Context) {
	kind, err := model.ParseKind(c.Param("kind"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		response.Fail(c, statusFor(err), err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{"deleted": true})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrNameRequired), errors.Is(err, model.ErrInvalidKind):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
