// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// Nothing here talks to the network or the model endpoint; the services
// packages do the work and hand these values around.
package models

import (
	"time"
)

// Supported media types for uploaded reports.
const (
	MediaTypeText = "text/plain"
	MediaTypePDF  = "application/pdf"
)

// PastedSourceName is the source name recorded for text pasted into the page.
const PastedSourceName = "pasted_report"

// ReportInput is one user submission before text extraction.
// It is transient: created per request and discarded once text is extracted.
type ReportInput struct {
	Data      []byte
	MediaType string // MediaTypeText or MediaTypePDF
	Name      string // Display name (original filename or PastedSourceName)
}

// SummaryRecord is an immutable entry in a session's history.
// One is created for every successful summary generation.
type SummaryRecord struct {
	ID         string    `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	SourceName string    `json:"source_name"`
	Summary    string    `json:"summary"`
	CharCount  int       `json:"char_count"` // Characters in the source report text
}

// SubmissionState is a step of the per-submission flow.
// Go Pattern: string constants instead of enums (Go doesn't have enums).
type SubmissionState string

const (
	StateEmpty              SubmissionState = "empty"
	StateExtracting         SubmissionState = "extracting"
	StateValidating         SubmissionState = "validating"
	StateAwaitingGeneration SubmissionState = "awaiting_generation"
	StateSucceeded          SubmissionState = "succeeded"
	StateFailed             SubmissionState = "failed"
)

// --- Request/Response DTOs ---

// CreateSummaryRequest is the JSON body for POST /api/v1/summaries
// when the report is sent as text instead of a multipart upload.
// An empty Text is reported by the pipeline as no_input.
type CreateSummaryRequest struct {
	Text string `json:"text"`
	Name string `json:"name,omitempty"` // Optional display name, defaults to PastedSourceName
}

// ValidateRequest is the JSON body for POST /api/v1/validate.
type ValidateRequest struct {
	Text string `json:"text"`
}

// ValidateResponse reports whether text is ready to be summarized.
type ValidateResponse struct {
	Ready     bool   `json:"ready"`
	Message   string `json:"message"`
	CharCount int    `json:"char_count"`
}

// SummaryResponse is returned after a successful submission.
type SummaryResponse struct {
	Record      SummaryRecord `json:"record"`
	DownloadURL string        `json:"download_url"`
	Filename    string        `json:"filename"`
}

// HistoryResponse lists the most recent summaries of the current session.
type HistoryResponse struct {
	Total   int             `json:"total"`
	Records []SummaryRecord `json:"records"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Sessions int    `json:"sessions"`
}
