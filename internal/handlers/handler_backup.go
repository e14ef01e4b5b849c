package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/baatie/controllerpro/internal/apperrors"
	portssvc "github.com/baatie/controllerpro/internal/core/ports/services"
	"github.com/baatie/controllerpro/internal/dto"
	"github.com/baatie/controllerpro/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxBackupBytes caps import payloads; receipt attachments are inlined as
// base64 so documents can get large.
const maxBackupBytes = 64 << 20

// backupHandler handles export and import of backup documents.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{backupService: bs}
}

// registerBackupRoutes registers backup export and import routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportBackup)
		backup.POST("/import", h.importBackup)
	}
}

// exportBackup godoc
// @Summary Export a backup document
// @Description Exports one business's records when businessId is given, or every tenant's records when it is omitted.
// @Tags backup
// @Produce json
// @Param businessId query string false "Business ID; omit for a system-wide export"
// @Success 200 {object} services.SystemBackup
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/export [get]
func (h *backupHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	businessID := c.Query("businessId")

	if businessID != "" {
		doc, err := h.backupService.ExportBusiness(c.Request.Context(), businessID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, ErrorResponse{Error: "Business not found"})
			} else {
				logger.Error("Failed to export business", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export backup"})
			}
			return
		}
		c.JSON(http.StatusOK, doc)
		return
	}

	doc, err := h.backupService.ExportSystem(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export system", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export backup"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// importBackup godoc
// @Summary Import a backup document
// @Description Detects the document shape (single business or system-wide) and restores the records it carries with their original ids. Rejects unrecognized shapes before touching any data.
// @Tags backup
// @Accept json
// @Produce json
// @Success 200 {object} dto.ImportBackupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup/import [post]
func (h *backupHandler) importBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBackupBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
		return
	}

	if err := h.backupService.ImportBackup(c.Request.Context(), raw); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to import backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import backup"})
		}
		return
	}

	logger.Info("Backup imported")
	c.JSON(http.StatusOK, dto.ImportBackupResponse{Restored: true})
}
