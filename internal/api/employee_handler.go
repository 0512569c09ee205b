package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hr-management-api/internal/auth"
	"github.com/hr-management-api/internal/models"
	"github.com/hr-management-api/internal/service"
	"github.com/rs/zerolog"
)

// EmployeeHandler handles employee record and provisioning endpoints
type EmployeeHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(services *service.Services, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		services: services,
		log:      log.With().Str("handler", "employee").Logger(),
	}
}

// Create handles POST /v1/employees: provisions one employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.services.Provisioning.CreateEmployee(ctx, auth.UserID(c), &req)
	if err != nil {
		h.log.Error().Err(err).Str("email", req.Email).Msg("Employee provisioning failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// List handles GET /v1/employees
func (h *EmployeeHandler) List(c *gin.Context) {
	profiles, err := h.services.Employee.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list employees")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(profiles),
		"employees": profiles,
	})
}

// Get handles GET /v1/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	profile, err := h.services.Employee.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Update handles PATCH /v1/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	profile, err := h.services.Employee.Update(c.Request.Context(), auth.UserID(c), c.Param("id"), &req)
	if err != nil {
		h.log.Error().Err(err).Str("id", c.Param("id")).Msg("Employee update failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// History handles GET /v1/employees/:id/history
func (h *EmployeeHandler) History(c *gin.Context) {
	entries, err := h.services.Employee.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"history": entries,
	})
}
