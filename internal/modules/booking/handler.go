package booking

import (
	"net/http"
	"strconv"

	"shareit/internal/domain"
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
	rg.POST("/bookings", h.Create)
	rg.PATCH("/bookings/:id", h.SetApproval)
	rg.PATCH("/bookings/:id/cancel", h.Cancel)
	rg.GET("/bookings/:id", h.GetByID)
	rg.GET("/bookings", h.ListForBooker)
	rg.GET("/bookings/owner", h.ListForOwner)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64(middleware.ContextUserID), req)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) SetApproval(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Query param approved must be true or false")
		return
	}

	b, err := h.service.SetApproval(c.Request.Context(), c.GetInt64(middleware.ContextUserID), bookingID, approved)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), c.GetInt64(middleware.ContextUserID), bookingID)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) GetByID(c *gin.Context) {
	bookingID, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), c.GetInt64(middleware.ContextUserID), bookingID)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListForBooker(c *gin.Context) {
	state, ok := stateFilter(c)
	if !ok {
		return
	}

	items, err := h.service.ListForBooker(c.Request.Context(), c.GetInt64(middleware.ContextUserID), state)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) ListForOwner(c *gin.Context) {
	state, ok := stateFilter(c)
	if !ok {
		return
	}

	items, err := h.service.ListForOwner(c.Request.Context(), c.GetInt64(middleware.ContextUserID), state)
	if err != nil {
		h.mapError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) mapError(c *gin.Context, err error) {
	switch err {
	case ErrInvalidDateRange, ErrSelfBooking, ErrItemUnavailable:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrUserNotFound, ErrItemNotFound, ErrBookingNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrAlreadyDecided:
		response.Error(c, http.StatusConflict, "ALREADY_DECIDED", err.Error())
	case ErrNotOwner, ErrNotBooker, ErrAccessDenied:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func stateFilter(c *gin.Context) (domain.StateFilter, bool) {
	state, err := domain.ParseStateFilter(c.Query("state"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "UNSUPPORTED_STATE", "Unknown state: "+c.Query("state"))
		return "", false
	}
	return state, true
}
