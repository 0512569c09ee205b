package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hr-management-api/internal/auth"
	"github.com/hr-management-api/internal/config"
	"github.com/hr-management-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, tokens *auth.TokenManager, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	authHandler := NewAuthHandler(services, log)
	employeeHandler := NewEmployeeHandler(services, log)
	importHandler := NewImportHandler(services, cfg, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(services))

	// API v1
	v1 := router.Group("/v1")
	{
		v1.POST("/auth/login", authHandler.Login)

		authed := v1.Group("", auth.RequireAuth(tokens, log))
		{
			// Employee endpoints
			employees := authed.Group("/employees")
			{
				employees.GET("", employeeHandler.List)
				employees.POST("", employeeHandler.Create)
				employees.GET("/:id", employeeHandler.Get)
				employees.PATCH("/:id", employeeHandler.Update)
				employees.GET("/:id/history", employeeHandler.History)
			}

			// Import endpoints
			imports := authed.Group("/imports")
			{
				imports.GET("/template", importHandler.DownloadTemplate)
				imports.POST("", importHandler.CreateSession)
				imports.GET("/:session_id", importHandler.GetSession)
				imports.POST("/:session_id/confirm", importHandler.Confirm)
				imports.DELETE("/:session_id", importHandler.Cancel)
			}
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "hr-management-api",
	})
}

// metricsHandler returns basic store metrics
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		employeeCount, _ := services.Employee.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"employees": employeeCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware sets permissive CORS headers on every response and
// short-circuits OPTIONS preflights with a bare 200 ok
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.String(http.StatusOK, "ok")
			c.Abort()
			return
		}

		c.Next()
	}
}
