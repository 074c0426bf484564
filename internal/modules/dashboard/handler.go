package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hosteldesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.Stats)
	rg.GET("/dashboard/overview", h.Overview)
	rg.GET("/dashboard/activity", h.Activity)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch dashboard statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch system overview", err.Error())
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *Handler) Activity(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Activity())
}
