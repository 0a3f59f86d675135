package reports

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sessions/:id/report", h.get)
	rg.GET("/sessions/:id/report.csv", h.getCSV)
	rg.GET("/sessions/:id/report.pdf", h.getPDF)
}

func (h *Handler) get(c *gin.Context) {
	report, ok := h.generate(c)
	if !ok {
		return
	}
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) getCSV(c *gin.Context) {
	report, ok := h.generate(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="assessment_report.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(ToCSV(report.Rows)))
}

func (h *Handler) getPDF(c *gin.Context) {
	report, ok := h.generate(c)
	if !ok {
		return
	}
	data, err := ToPDF(report.Title, report.Rows)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render report", nil)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="assessment_report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) generate(c *gin.Context) (Report, bool) {
	report, err := h.Svc.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownSession):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate report", nil)
		}
		return Report{}, false
	}
	return report, true
}
