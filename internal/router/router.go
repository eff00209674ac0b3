// Package router sets up all HTTP routes.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/medsum/internal/handlers"
	"github.com/Shimizu-Technology/medsum/internal/metrics"
	"github.com/Shimizu-Technology/medsum/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
// m may be nil, in which case /metrics is not served.
func Setup(h *handlers.Handler, m *metrics.Metrics) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORS([]string{h.Config.CORSOrigin}))
	r.SetHTMLTemplate(handlers.PageTemplate())

	// --- Stateless routes (no session) ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.POST("/api/v1/validate", h.ValidateText)
	r.GET("/api/docs", h.ServeSwaggerUI)
	r.GET("/api/docs/openapi.yaml", h.ServeOpenAPISpec)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// --- Session routes: each browser gets its own history ---
	// Submissions start a session when needed; reads only resume one.
	writes := r.Group("/")
	writes.Use(middleware.Session(h.Sessions, h.Config.GinMode == gin.ReleaseMode))
	{
		writes.POST("/", h.SubmitPage)
		writes.POST("/api/v1/summaries", h.CreateSummary)
	}

	reads := r.Group("/")
	reads.Use(middleware.ResumeSession(h.Sessions))
	{
		reads.GET("/", h.ShowPage)
		reads.GET("/api/v1/summaries/:id/download", h.DownloadSummary)
		reads.GET("/api/v1/history", h.GetHistory)
		reads.DELETE("/api/v1/session", h.EndSession)
	}

	return r
}
