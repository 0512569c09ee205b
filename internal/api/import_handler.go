package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hr-management-api/internal/auth"
	"github.com/hr-management-api/internal/config"
	"github.com/hr-management-api/internal/parser"
	"github.com/hr-management-api/internal/service"
	"github.com/rs/zerolog"
)

// ImportHandler handles import session endpoints
type ImportHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "import").Logger(),
	}
}

// DownloadTemplate handles GET /v1/imports/template.
// The template is BOM-prefixed for spreadsheet compatibility.
func (h *ImportHandler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename=employee_import_template.csv`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", parser.EmployeeTemplateDownload())
}

// CreateSession handles POST /v1/imports: accepts a CSV upload, parses
// and validates it, and stages the batch for confirmation
func (h *ImportHandler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a CSV file"})
		return
	}

	if header.Size > h.cfg.Import.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Import.MaxUploadSize/(1024*1024)),
		})
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.cfg.Import.MaxUploadSize))
	if err != nil {
		h.log.Error().Err(err).Str("file", header.Filename).Msg("Failed to read upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	session, err := h.services.Import.CreateSession(ctx, auth.UserID(c), string(content))
	if err != nil {
		h.log.Warn().Err(err).Str("file", header.Filename).Msg("Import session rejected")
		respondError(c, err)
		return
	}

	h.log.Info().
		Str("session_id", session.ID).
		Str("file", header.Filename).
		Int64("size_bytes", header.Size).
		Msg("Import session created")

	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /v1/imports/:session_id
func (h *ImportHandler) GetSession(c *gin.Context) {
	session, err := h.services.Import.GetSession(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Confirm handles POST /v1/imports/:session_id/confirm: dispatches the
// staged batch and returns the merged report
func (h *ImportHandler) Confirm(c *gin.Context) {
	session, err := h.services.Import.Confirm(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// Cancel handles DELETE /v1/imports/:session_id: discards a staged
// batch that has not been confirmed yet
func (h *ImportHandler) Cancel(c *gin.Context) {
	session, err := h.services.Import.Cancel(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
