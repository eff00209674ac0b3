// page.go serves the single-page interactive tool.
//
//	GET  /   upload form, stats, recent summaries
//	POST /   form submission (multipart "file" or "text"), re-rendering
//	         the page with the summary or the problem
//
// Go Pattern: html/template escapes everything by default. The only
// unescaped value is the summary HTML, which comes from the markdown
// renderer (raw HTML in model output is dropped there).
package handlers

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/medsum/internal/history"
	"github.com/Shimizu-Technology/medsum/internal/middleware"
	"github.com/Shimizu-Technology/medsum/internal/models"
	"github.com/Shimizu-Technology/medsum/internal/services/pipeline"
	"github.com/Shimizu-Technology/medsum/internal/services/report"
)

// Display limits on the page.
const (
	recentNameMax = 30  // Characters of a source name shown in the recent list
	previewMax    = 300 // Characters of report text shown in the preview
)

//go:embed templates/index.html
var indexHTML string

// PageTemplate returns the parsed page template for gin's SetHTMLTemplate.
func PageTemplate() *template.Template {
	return template.Must(template.New("index.html").Parse(indexHTML))
}

// pageView is everything the template needs.
type pageView struct {
	Provider    string
	Count       int
	MaxUploadMB int64
	Recent      []recentItem

	// Result of the last submission, if any
	Warning     string
	Readiness   *report.Readiness
	Preview     string
	SourceName  string
	Summary     template.HTML
	DownloadURL string
	Filename    string
}

type recentItem struct {
	Timestamp string
	Name      string
	CharCount int
}

// ShowPage renders the page.
// GET /
func (h *Handler) ShowPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.newPageView(sessionHistory(c)))
}

// SubmitPage runs the submission from the page form and renders the result.
// POST /
func (h *Handler) SubmitPage(c *gin.Context) {
	s := middleware.GetSession(c)

	sub, reqErr := h.readSubmission(c)
	if reqErr != nil {
		view := h.newPageView(s.History)
		view.Warning = reqErr.Message
		c.HTML(reqErr.Status, "index.html", view)
		return
	}

	out := h.Pipeline.Run(c.Request.Context(), sub, s.History)

	// Build the view after Run so the stats include this summary
	view := h.newPageView(s.History)
	view.SourceName = out.SourceName
	if out.ReportText != "" {
		view.Preview = preview(out.ReportText)
		r := report.CheckReadiness(out.ReportText)
		view.Readiness = &r
	}

	if !out.Succeeded() {
		view.Warning = pipeline.UserMessage(out.Err)
		c.HTML(statusForKind(pipeline.FailureKind(out.Err)), "index.html", view)
		return
	}

	rendered, err := h.Markdown.HTML(out.Record.Summary)
	if err != nil {
		// The record is already stored; fall back to showing the raw text
		log.Printf("⚠️  Failed to render summary %s: %v", out.Record.ID, err)
		rendered = template.HTML("<pre>" + template.HTMLEscapeString(out.Record.Summary) + "</pre>")
	}
	view.Summary = rendered
	view.DownloadURL = downloadURL(out.Record.ID)
	view.Filename = SummaryFilename(out.Record.SourceName)

	c.HTML(http.StatusOK, "index.html", view)
}

func (h *Handler) newPageView(hist *history.Store) pageView {
	view := pageView{
		Provider:    h.Summarizer.Provider(),
		Count:       hist.Count(),
		MaxUploadMB: h.Config.MaxUploadMB(),
	}
	for _, rec := range hist.Recent(h.Config.HistoryDisplay) {
		view.Recent = append(view.Recent, toRecentItem(rec))
	}
	return view
}

func toRecentItem(rec models.SummaryRecord) recentItem {
	return recentItem{
		Timestamp: rec.Timestamp.Local().Format(time.DateTime),
		Name:      truncate(rec.SourceName, recentNameMax),
		CharCount: rec.CharCount,
	}
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func preview(text string) string {
	if len([]rune(text)) <= previewMax {
		return text
	}
	return truncate(text, previewMax) + "..."
}
