// export.go handles summary downloads.
//
// The download is the raw summary text, exactly as the model returned it,
// named after the report it came from: "lab_results.pdf" becomes
// "lab_results_summary.txt".
package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// DownloadSummary returns a summary from the session history as a file.
// GET /api/v1/summaries/:id/download
//
// Response headers are set for file download:
//   - Content-Type: text/plain
//   - Content-Disposition: attachment with filename
func (h *Handler) DownloadSummary(c *gin.Context) {
	record, ok := sessionHistory(c).Get(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, codeNotFound, "Summary not found in this session")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, SummaryFilename(record.SourceName)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.Summary))
}

// SummaryFilename derives the download filename from a source name by
// dropping a .pdf or .txt extension and appending "_summary.txt".
func SummaryFilename(sourceName string) string {
	base := sourceName
	switch strings.ToLower(filepath.Ext(base)) {
	case ".pdf", ".txt":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	base = sanitizeFilename(base)
	if base == "" {
		base = "medical_report"
	}
	return base + "_summary.txt"
}

func downloadURL(id string) string {
	return "/api/v1/summaries/" + id + "/download"
}

// sanitizeFilename removes characters that aren't safe for filenames.
// Go Pattern: Keep it simple: replace unsafe characters with hyphens
// and trim the result. We don't need a full filesystem-safe sanitizer
// since this is just for the Content-Disposition header.
func sanitizeFilename(name string) string {
	// Browsers may send a full client path; keep only the last element
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	// Replace common unsafe characters
	replacer := strings.NewReplacer(
		":", "-", "*", "-", "?", "-", "\"", "-",
		"<", "-", ">", "-", "|", "-", "\n", " ", "\r", "",
	)
	name = replacer.Replace(name)

	// Collapse multiple hyphens/spaces
	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	name = strings.TrimSpace(name)

	// Limit length, without splitting a multi-byte character
	if r := []rune(name); len(r) > 100 {
		name = string(r[:100])
	}

	return name
}
