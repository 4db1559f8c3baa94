package request

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
	rg.POST("/requests", h.Create)
	rg.GET("/requests", h.ListOwn)
	rg.GET("/requests/all", h.ListOthers)
	rg.GET("/requests/:id", h.GetByID)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), c.GetInt64(middleware.ContextUserID), req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, r)
}

func (h *Handler) ListOwn(c *gin.Context) {
	out, err := h.service.ListOwn(c.Request.Context(), c.GetInt64(middleware.ContextUserID))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) ListOthers(c *gin.Context) {
	out, err := h.service.ListOthers(c.Request.Context(), c.GetInt64(middleware.ContextUserID))
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	out, err := h.service.GetByID(c.Request.Context(), c.GetInt64(middleware.ContextUserID), id)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrNotFound, ErrUserNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
