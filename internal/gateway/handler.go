package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"shareit/internal/domain"
	"shareit/internal/pkg/response"
	"shareit/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler re-validates requests before the proxy forwards them, so the
// main service never sees malformed payloads from outside.
type Handler struct {
	proxy *Proxy
}

func NewHandler(proxy *Proxy) *Handler {
	return &Handler{proxy: proxy}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/users", h.validated(func() any { return &CreateUserRequest{} }))
	public.PATCH("/users/:id", h.withID(h.validated(func() any { return &UpdateUserRequest{} })))
	public.GET("/users/:id", h.withID(h.forward))
	public.GET("/users", h.forward)
	public.DELETE("/users/:id", h.withID(h.forward))

	protected.POST("/items", h.validated(func() any { return &CreateItemRequest{} }))
	protected.PATCH("/items/:id", h.withID(h.forward))
	protected.GET("/items/:id", h.withID(h.forward))
	protected.GET("/items", h.forward)
	protected.GET("/items/search", h.forward)
	protected.POST("/items/:id/comment", h.withID(h.validated(func() any { return &CreateCommentRequest{} })))

	protected.POST("/bookings", h.validated(func() any { return &CreateBookingRequest{} }))
	protected.PATCH("/bookings/:id", h.withID(h.approvalFlag(h.forward)))
	protected.PATCH("/bookings/:id/cancel", h.withID(h.forward))
	protected.GET("/bookings/:id", h.withID(h.forward))
	protected.GET("/bookings", h.stateChecked(h.forward))
	protected.GET("/bookings/owner", h.stateChecked(h.forward))

	protected.POST("/requests", h.validated(func() any { return &CreateRequestRequest{} }))
	protected.GET("/requests", h.forward)
	protected.GET("/requests/all", h.forward)
	protected.GET("/requests/:id", h.withID(h.forward))
}

func (h *Handler) forward(c *gin.Context) {
	h.proxy.Forward(c)
}

// validated decodes the body into a fresh DTO from newDTO, runs struct
// validation, restores the body and forwards on success.
func (h *Handler) validated(newDTO func() any) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Cannot read request body")
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		dto := newDTO()
		if err := json.Unmarshal(body, dto); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
			return
		}
		if fields := validator.Validate(dto); fields != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", fields)
			return
		}

		h.proxy.Forward(c)
	}
}

func (h *Handler) withID(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Path ID must be a positive integer")
			return
		}
		next(c)
	}
}

func (h *Handler) approvalFlag(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := strconv.ParseBool(c.Query("approved")); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Query param approved must be true or false")
			return
		}
		next(c)
	}
}

func (h *Handler) stateChecked(next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := domain.ParseStateFilter(c.Query("state")); err != nil {
			response.Error(c, http.StatusBadRequest, "UNSUPPORTED_STATE", "Unknown state: "+c.Query("state"))
			return
		}
		next(c)
	}
}
