package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/evidence"
	"assessment-backend/internal/reports"
	"assessment-backend/internal/responses"
	"assessment-backend/internal/sessions"
	"assessment-backend/internal/shared/config"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/server/middleware"
	"assessment-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	CatalogHandler  *catalog.Handler
	SessionHandler  *sessions.Handler
	ResponseHandler *responses.Handler
	EvidenceHandler *evidence.Handler
	ReportHandler   *reports.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Session(),
		middleware.RateLimit(rateLimits()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	deps.CatalogHandler.RegisterRoutes(api)
	deps.SessionHandler.RegisterRoutes(api)
	deps.ResponseHandler.RegisterRoutes(api)
	deps.EvidenceHandler.RegisterRoutes(api)
	deps.ReportHandler.RegisterRoutes(api)

	return r
}

// rateLimits throttles save and upload traffic per session. Reads are
// unlimited.
func rateLimits() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"WRITE": {Rate: 5, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			switch c.Request.Method {
			case http.MethodPut, http.MethodPost:
				return "WRITE"
			default:
				return ""
			}
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
