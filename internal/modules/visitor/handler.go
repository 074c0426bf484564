package visitor

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
	rg.GET("/visitors", h.List)
	rg.GET("/visitors/stats", h.Stats)
	rg.GET("/visitors/:id", h.Get)
	rg.POST("/visitors/checkin", h.CheckIn)
	rg.PUT("/visitors/:id/checkout", h.CheckOut)
	rg.DELETE("/visitors/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.VisitorFilters{
		Status:    c.Query("status"),
		StudentID: c.Query("studentId"),
		Date:      c.Query("date"),
	}

	visitors, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch visitors", err.Error())
		return
	}
	c.JSON(http.StatusOK, visitors)
}

func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Visitor not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch visitor", err.Error())
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	v, err := h.service.CheckIn(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "Name, phone, purpose, student ID, and ID proof are required")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to check in visitor", err.Error())
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *Handler) CheckOut(c *gin.Context) {
	v, err := h.service.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Visitor not found")
		case errors.Is(err, ErrAlreadyCheckedOut):
			response.Error(c, http.StatusBadRequest, "Visitor already checked out")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to check out visitor", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Visitor not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to delete visitor", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch visitor statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
