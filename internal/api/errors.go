package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hr-management-api/internal/models"
)

// respondError maps domain errors to the HTTP status ladder:
// 400 bad payload / bad file, 401 unauthenticated, 403 not admin,
// 404 unknown resource, 409 wrong session state, 500 provisioning.
func respondError(c *gin.Context, err error) {
	var provErr *models.ProvisioningError
	var stateErr *models.SessionStateError

	switch {
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrMissingRequiredFields),
		errors.Is(err, models.ErrCSVTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &stateErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &provErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
