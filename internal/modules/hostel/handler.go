package hostel

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
	rg.GET("/hostels", h.List)
	rg.GET("/hostels/stats", h.Stats)
	rg.GET("/hostels/:id", h.Get)
	rg.POST("/hostels", h.Create)
	rg.PUT("/hostels/:id", h.Update)
	rg.DELETE("/hostels/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	hostels, err := h.service.List(c.Request.Context(), repository.HostelFilters{
		Type: c.Query("type"),
	})
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch hostels", err.Error())
		return
	}
	c.JSON(http.StatusOK, hostels)
}

func (h *Handler) Get(c *gin.Context) {
	hostel, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Hostel not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch hostel", err.Error())
		return
	}
	c.JSON(http.StatusOK, hostel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hostel, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Missing or invalid hostel fields")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create hostel", err.Error())
		return
	}
	c.JSON(http.StatusCreated, hostel)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hostel, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Hostel not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid hostel fields")
		case errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to update hostel", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, hostel)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Hostel not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to delete hostel", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch hostel statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
