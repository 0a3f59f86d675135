package evidence

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches evidence routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/evidence/:diagnosticId", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	sessionID := c.Param("id")
	diagnosticID := c.Param("diagnosticId")
	c.Set("diagnosticId", diagnosticID)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	upload, err := h.Svc.Upload(c.Request.Context(), sessionID, diagnosticID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSession):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		case errors.Is(err, ErrUnknownDiag):
			respond.Error(c, http.StatusNotFound, "not_found", "diagnostic not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrStoreFailed):
			respond.Error(c, http.StatusBadGateway, "storage_error", "failed to store evidence", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload evidence", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{
		"evidence":    upload.StoredPath,
		"sizeBytes":   upload.SizeBytes,
		"mimeType":    upload.MimeType,
		"textSnippet": upload.TextSnippet,
	})
}
