// summaries.go handles the JSON API for summaries (create, validate,
// history) and session teardown.
//
//	POST   /api/v1/summaries   summarize an uploaded file or pasted text
//	POST   /api/v1/validate    check whether text is ready to be summarized
//	GET    /api/v1/history     recent summaries of the current session
//	DELETE /api/v1/session     end the current session and drop its history
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/medsum/internal/history"
	"github.com/Shimizu-Technology/medsum/internal/middleware"
	"github.com/Shimizu-Technology/medsum/internal/models"
	"github.com/Shimizu-Technology/medsum/internal/services/report"
)

// CreateSummary runs one submission and returns the stored record.
// POST /api/v1/summaries
//
// Processing is synchronous: the response arrives when the model endpoint
// has answered (or failed).
func (h *Handler) CreateSummary(c *gin.Context) {
	s := middleware.GetSession(c)

	sub, reqErr := h.readSubmission(c)
	if reqErr != nil {
		abortWithError(c, reqErr.Status, reqErr.Code, reqErr.Message)
		return
	}

	out := h.Pipeline.Run(c.Request.Context(), sub, s.History)
	if !out.Succeeded() {
		resp := failureResponse(out)
		c.JSON(resp.Code, resp)
		return
	}

	c.JSON(http.StatusCreated, models.SummaryResponse{
		Record:      *out.Record,
		DownloadURL: downloadURL(out.Record.ID),
		Filename:    SummaryFilename(out.Record.SourceName),
	})
}

// ValidateText reports whether text would pass validation.
// POST /api/v1/validate
func (h *Handler) ValidateText(c *gin.Context) {
	h.limitBody(c)

	var req models.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if isTooLarge(err) {
			e := h.tooLarge(subjectReport)
			abortWithError(c, e.Status, e.Code, e.Message)
			return
		}
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, "Request body must be JSON: {\"text\": \"...\"}")
		return
	}

	r := report.CheckReadiness(req.Text)
	c.JSON(http.StatusOK, models.ValidateResponse{
		Ready:     r.Ready,
		Message:   r.Message,
		CharCount: report.CharCount(req.Text),
	})
}

// GetHistory returns the most recent summaries, newest first.
// A caller without a live session gets an empty history.
// GET /api/v1/history?limit=5
func (h *Handler) GetHistory(c *gin.Context) {
	hist := sessionHistory(c)

	limit := h.Config.HistoryDisplay
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, codeInvalidRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Total:   hist.Count(),
		Records: hist.Recent(limit),
	})
}

// EndSession tears down the caller's session. Ending a session that does
// not exist succeeds too.
// DELETE /api/v1/session
func (h *Handler) EndSession(c *gin.Context) {
	if s := middleware.GetSession(c); s != nil {
		h.Sessions.End(s.ID)
	}
	middleware.ClearSessionCookie(c, h.Config.GinMode == "release")
	c.Status(http.StatusNoContent)
}

// sessionHistory returns the history of the caller's session, or an empty
// store when the request carries no live session.
func sessionHistory(c *gin.Context) *history.Store {
	if s := middleware.GetSession(c); s != nil {
		return s.History
	}
	return history.NewStore()
}
