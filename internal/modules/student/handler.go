package student

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/students", h.List)
	rg.GET("/students/:id", h.Get)
	rg.POST("/students", h.Create)
	rg.PUT("/students/:id", h.Update)
	rg.DELETE("/students/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.StudentFilters{
		Status: c.Query("status"),
		Course: c.Query("course"),
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid year filter")
			return
		}
		f.Year = year
	}

	students, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch students", err.Error())
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *Handler) Get(c *gin.Context) {
	st, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Student not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to fetch student", err.Error())
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Missing or invalid student fields")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusBadRequest, "Registration number or email already exists")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to create student", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, st)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	st, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Student not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "Invalid student fields")
		case errors.Is(err, ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No fields to update")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusBadRequest, "Registration number or email already exists")
		default:
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to update student", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Student not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Failed to delete student", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}
