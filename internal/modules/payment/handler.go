package payment

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
	rg.GET("/payments", h.List)
	rg.GET("/payments/stats", h.Stats)
	rg.GET("/payments/:id", h.Get)
	rg.POST("/payments", h.Create)
	rg.PUT("/payments/:id", h.Update)
	rg.PUT("/payments/:id/paid", h.MarkPaid)
	rg.DELETE("/payments/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.PaymentFilters{
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		StudentID: c.Query("studentId"),
	}

	payments, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Payment not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrStudentMissing):
			response.Error(c, http.StatusBadRequest, "Student not found")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create payment", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Payment not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid payment fields")
		case errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to update payment", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	p, err := h.service.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Payment not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to mark payment as paid", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Payment not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to delete payment", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch payment statistics", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
