// Package handlers contains HTTP handler functions for the page and the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, HTML, Data, Status)
// - Middleware data (c.Get/c.Set)
//
// Go handlers are plain functions with no class inheritance.
// We group related handlers into a struct (Handler) that holds shared dependencies.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/medsum/internal/config"
	"github.com/Shimizu-Technology/medsum/internal/models"
	"github.com/Shimizu-Technology/medsum/internal/services/pipeline"
	"github.com/Shimizu-Technology/medsum/internal/services/render"
	"github.com/Shimizu-Technology/medsum/internal/services/summary"
	"github.com/Shimizu-Technology/medsum/internal/session"
)

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
// This makes testing easy: just create a Handler with a mock summarizer.
type Handler struct {
	Config     *config.Config
	Pipeline   *pipeline.Pipeline
	Sessions   *session.Manager
	Summarizer *summary.Client
	Markdown   *render.Markdown
	Version    string
}

// NewHandler creates a new handler with all dependencies.
func NewHandler(cfg *config.Config, p *pipeline.Pipeline, sessions *session.Manager, sum *summary.Client, version string) *Handler {
	return &Handler{
		Config:     cfg,
		Pipeline:   p,
		Sessions:   sessions,
		Summarizer: sum,
		Markdown:   render.NewMarkdown(),
		Version:    version,
	}
}

// HealthCheck returns the service health status.
// GET /api/v1/health
//
// The model endpoint is not called here: a health probe must not spend
// tokens or depend on a third party being up.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "ok",
		Version:  h.Version,
		Provider: h.Summarizer.Provider(),
		Model:    h.Summarizer.Model(),
		Sessions: h.Sessions.Count(),
	})
}
