package item

import (
	"net/http"
	"strconv"

	"shareit/internal/middleware"
	"shareit/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/items", h.Create)
	rg.PATCH("/items/:id", h.Update)
	rg.GET("/items/:id", h.GetByID)
	rg.GET("/items", h.ListByOwner)
	rg.GET("/items/search", h.Search)
	rg.POST("/items/:id/comment", h.AddComment)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	i, err := h.service.Create(c.Request.Context(), c.GetInt64(middleware.ContextUserID), req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, i)
}

func (h *Handler) Update(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	i, err := h.service.Update(c.Request.Context(), c.GetInt64(middleware.ContextUserID), itemID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, i)
}

func (h *Handler) GetByID(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	d, err := h.service.GetByID(c.Request.Context(), c.GetInt64(middleware.ContextUserID), itemID)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *Handler) ListByOwner(c *gin.Context) {
	items, err := h.service.ListByOwner(c.Request.Context(), c.GetInt64(middleware.ContextUserID))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Search(c *gin.Context) {
	items, err := h.service.Search(c.Request.Context(), c.Query("text"))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) AddComment(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), c.GetInt64(middleware.ContextUserID), itemID, req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cm)
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrNotFound, ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case ErrCommentNotAllowed:
		response.Error(c, http.StatusBadRequest, "COMMENT_NOT_ALLOWED", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return 0, false
	}
	return id, true
}
