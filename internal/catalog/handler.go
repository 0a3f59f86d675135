package catalog

import (
	"net/http"
	"strconv"
	"strings"

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

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/diagnostics", h.list)
	rg.GET("/response-keys", h.responseKeys)
	rg.GET("/tags", h.tags)
}

type diagnosticResponse struct {
	ID               string   `json:"id"`
	ProfileID        string   `json:"profileId,omitempty"`
	Title            string   `json:"title"`
	Statement        string   `json:"statement,omitempty"`
	ResponseGuidance string   `json:"responseGuidance,omitempty"`
	EEEPackage       string   `json:"eeePackage,omitempty"`
	Tiers            []int    `json:"tiers"`
	Tags             []string `json:"tags,omitempty"`
}

func (h *Handler) list(c *gin.Context) {
	tiers := parseTiers(c.Query("tiers"))
	tag := strings.TrimSpace(c.Query("tag"))

	page := 1
	if v := c.Query("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			page = parsed
		}
	}

	result := h.Svc.Page(tiers, tag, page)

	items := make([]diagnosticResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, diagnosticResponse{
			ID:               item.ID,
			ProfileID:        item.ProfileID,
			Title:            item.Title,
			Statement:        item.Statement,
			ResponseGuidance: item.ResponseGuidance,
			EEEPackage:       item.EEEPackage,
			Tiers:            item.Tiers,
			Tags:             item.Tags,
		})
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"items":        items,
		"page":         result.Page,
		"totalPages":   result.TotalPages,
		"visiblePages": result.VisiblePages,
		"pageSize":     h.Svc.PageSize,
	})
}

func (h *Handler) responseKeys(c *gin.Context) {
	keys := h.Svc.ResponseKeys()
	resp := make([]gin.H, 0, len(keys))
	for _, key := range keys {
		resp = append(resp, gin.H{
			"id":          key.ID,
			"label":       key.Label,
			"description": key.Description,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) tags(c *gin.Context) {
	tags := h.Svc.Tags()
	if tags == nil {
		tags = []string{}
	}
	respond.JSON(c, http.StatusOK, tags)
}

// parseTiers parses a comma-separated tier list; an empty or unparseable value
// selects every tier.
func parseTiers(raw string) []int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []int{1, 2, 3, 4}
	}
	var tiers []int
	for _, part := range strings.Split(raw, ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			tiers = append(tiers, v)
		}
	}
	if len(tiers) == 0 {
		return []int{1, 2, 3, 4}
	}
	return tiers
}
