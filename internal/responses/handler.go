package responses

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
)

const maxResponseBytes = 64 << 10 // 64KB of rationale is plenty

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches response routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/sessions/:id/responses/:diagnosticId", h.put)
	rg.GET("/sessions/:id/responses", h.list)
}

type putRequest struct {
	Response string `json:"response"`
}

type recordResponse struct {
	DiagnosticID string    `json:"diagnosticId"`
	Response     string    `json:"response"`
	Score        int       `json:"score"`
	Confidence   string    `json:"confidence"`
	Evidence     string    `json:"evidence,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (h *Handler) put(c *gin.Context) {
	sessionID := c.Param("id")
	diagnosticID := c.Param("diagnosticId")
	c.Set("diagnosticId", diagnosticID)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxResponseBytes)

	var req putRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	record, err := h.Svc.Record(c.Request.Context(), sessionID, diagnosticID, req.Response)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSession):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		case errors.Is(err, ErrUnknownDiag):
			respond.Error(c, http.StatusNotFound, "not_found", "diagnostic not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record response", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(record))
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSession):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list responses", nil)
		}
		return
	}

	resp := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toResponse(rec))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		DiagnosticID: rec.DiagnosticID,
		Response:     rec.ResponseText,
		Score:        rec.Score,
		Confidence:   string(rec.Confidence),
		Evidence:     rec.EvidenceRef,
		UpdatedAt:    rec.UpdatedAt,
	}
}
