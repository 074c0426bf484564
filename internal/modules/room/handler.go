package room

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
	rg.GET("/rooms", h.List)
	rg.GET("/rooms/stats", h.Stats)
	rg.GET("/rooms/:id", h.Get)
	rg.POST("/rooms", h.Create)
	rg.PUT("/rooms/:id", h.Update)
	rg.DELETE("/rooms/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.RoomFilters{
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		HostelID:  c.Query("hostelId"),
		Available: c.Query("available") == "true",
	}

	rooms, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch rooms", err.Error())
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Room not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch room", err.Error())
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Missing or invalid room fields")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create room", err.Error())
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Room not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid room fields")
		case errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to update room", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Room not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to delete room", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch room statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
