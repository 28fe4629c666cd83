package handler

import (
	"net/http"
	"strings"

	"antiques-backend/internal/domains/item/model"
	"antiques-backend/internal/domains/item/repository"
	"antiques-backend/internal/domains/item/service"
	"antiques-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	service service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{service: svc}
}

type updateItemRequest struct {
	ID string `json:"id"`
	model.ItemPayload
}

type deleteItemRequest struct {
	ID string `json:"id"`
}

// Create handles POST /api/create-item.
func (h *ItemHandler) Create(c *gin.Context) {
	var payload model.ItemPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), payload, requestBaseURL(c))
	if err != nil {
		response.Fail(c, model.GetHTTPStatusCode(err), err.Error())
		return
	}

	response.OK(c, http.StatusCreated, gin.H{
		"itemId":  item.ID,
		"item":    item,
		"message": "Item created successfully",
	})
}

// Update handles POST /api/update-item.
func (h *ItemHandler) Update(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), req.ID, req.ItemPayload, requestBaseURL(c))
	if err != nil {
		response.Fail(c, model.GetHTTPStatusCode(err), err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"item":    item,
		"message": "Item updated successfully",
	})
}

// Delete handles POST /api/delete-item.
func (h *ItemHandler) Delete(c *gin.Context) {
	var req deleteItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	warning, err := h.service.DeleteItem(c.Request.Context(), req.ID)
	if err != nil {
		response.Fail(c, model.GetHTTPStatusCode(err), err.Error())
		return
	}

	body := gin.H{"message": "Item and all associated images deleted successfully"}
	if warning != "" {
		body["warning"] = warning
	}
	response.OK(c, http.StatusOK, body)
}

// Get handles GET /api/get-item?id=.
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.service.GetItem(c.Request.Context(), c.Query("id"))
	if err != nil {
		response.Fail(c, model.GetHTTPStatusCode(err), err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{"item": item})
}

// List handles GET /api/get-items with optional equality filters.
func (h *ItemHandler) List(c *gin.Context) {
	filter := repository.Filter{
		StoreLocation: c.Query("storeLocation"),
		Category:      c.Query("category"),
		Period:        c.Query("period"),
	}
	if featured := c.Query("featured"); featured != "" {
		val := parseTruthy(featured)
		filter.Featured = &val
	}

	items, total, err := h.service.ListItems(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"items":      items,
		"count":      len(items),
		"totalCount": total,
	})
}

// parseTruthy follows the usual truthy-string convention for query params.
func parseTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// requestBaseURL rebuilds the public scheme+host of the current request so
// stored images get fully-qualified URLs.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
