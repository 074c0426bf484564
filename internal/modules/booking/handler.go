package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/internal/pkg/response"
	"hosteldesk/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/stats", h.Stats)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings", h.Create)
	rg.PUT("/bookings/:id", h.Update)
	rg.PUT("/bookings/:id/confirm", h.Confirm)
	rg.PUT("/bookings/:id/cancel", h.Cancel)
	rg.DELETE("/bookings/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.BookingFilters{
		Status:    c.Query("status"),
		StudentID: c.Query("studentId"),
		RoomID:    c.Query("roomId"),
	}

	bookings, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Student ID, room ID, start date, and amount are required")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "Room is already booked for this period")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid booking fields")
		case errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to update booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Confirm(c *gin.Context) {
	b, err := h.service.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Error(c, http.StatusBadRequest, "Only pending bookings can be confirmed")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to confirm booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to delete booking", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch booking statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
