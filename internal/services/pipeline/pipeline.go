// Package pipeline runs one report submission from raw input to a stored
// summary.
//
// The steps run in order on the caller's goroutine:
//
//	empty → extracting → validating → awaiting_generation → succeeded | failed
//
// Pasted text skips extracting. A failure at any step ends the submission;
// the endpoint is only called for validated text and history is only
// appended to after a complete summary comes back.
package pipeline

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Shimizu-Technology/medsum/internal/history"
	"github.com/Shimizu-Technology/medsum/internal/metrics"
	"github.com/Shimizu-Technology/medsum/internal/models"
	"github.com/Shimizu-Technology/medsum/internal/services/report"
)

// ErrNoInput is returned when a submission carries neither a file nor text.
var ErrNoInput = errors.New("please upload a file or paste text to generate a summary")

// Extractor produces plain text from an uploaded file.
type Extractor interface {
	Extract(in models.ReportInput) (string, error)
}

// Generator sends a prompt to the model endpoint.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Submission is one user request. Pasted Text takes precedence over File,
// the same as on the page where the paste tab overrides an upload.
type Submission struct {
	File *models.ReportInput
	Text string
	Name string // Display name for Text; defaults to models.PastedSourceName
}

// Outcome is the terminal state of a submission.
type Outcome struct {
	State      models.SubmissionState // StateSucceeded or StateFailed
	FailedAt   models.SubmissionState // Step that failed; empty on success
	Err        error
	Record     *models.SummaryRecord // Set on success
	SourceName string
	ReportText string // Extracted text, when extraction got that far
}

// Succeeded reports whether a summary was produced.
func (o Outcome) Succeeded() bool {
	return o.State == models.StateSucceeded
}

// Pipeline wires the steps together.
type Pipeline struct {
	extractor Extractor
	generator Generator
	metrics   *metrics.Metrics

	now   func() time.Time
	newID func() string
}

// New returns a pipeline. m may be nil.
func New(extractor Extractor, generator Generator, m *metrics.Metrics) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		generator: generator,
		metrics:   m,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Run processes sub and appends the resulting record to store on success.
func (p *Pipeline) Run(ctx context.Context, sub Submission, store *history.Store) Outcome {
	out := p.run(ctx, sub, store)

	outcome := string(models.StateSucceeded)
	if !out.Succeeded() {
		outcome = FailureKind(out.Err)
		log.Printf("⚠️  Submission %q failed while %s: %v", out.SourceName, out.FailedAt, out.Err)
	}
	p.metrics.ObserveSubmission(sourceLabel(sub), outcome)
	return out
}

func (p *Pipeline) run(ctx context.Context, sub Submission, store *history.Store) Outcome {
	var (
		text string
		name string
	)

	switch {
	case sub.Text != "":
		text = sub.Text
		name = sub.Name
		if name == "" {
			name = models.PastedSourceName
		}
	case sub.File != nil:
		name = sub.File.Name
		extracted, err := p.extractor.Extract(*sub.File)
		if err != nil {
			return failed(models.StateExtracting, err, name, "")
		}
		text = extracted
	default:
		return failed(models.StateEmpty, ErrNoInput, "", "")
	}

	if err := report.Validate(text); err != nil {
		return failed(models.StateValidating, err, name, text)
	}
	charCount := report.CharCount(text)
	p.metrics.ObserveReportChars(charCount)

	start := time.Now()
	summaryText, err := p.generator.Generate(ctx, report.BuildPrompt(text))
	p.metrics.ObserveGeneration(time.Since(start), err)
	if err != nil {
		return failed(models.StateAwaitingGeneration, err, name, text)
	}

	record := models.SummaryRecord{
		ID:         p.newID(),
		Timestamp:  p.now(),
		SourceName: name,
		Summary:    summaryText,
		CharCount:  charCount,
	}
	store.Append(record)

	return Outcome{
		State:      models.StateSucceeded,
		Record:     &record,
		SourceName: name,
		ReportText: text,
	}
}

func failed(at models.SubmissionState, err error, name, text string) Outcome {
	return Outcome{
		State:      models.StateFailed,
		FailedAt:   at,
		Err:        err,
		SourceName: name,
		ReportText: text,
	}
}

func sourceLabel(sub Submission) string {
	switch {
	case sub.Text != "":
		return "paste"
	case sub.File == nil:
		return "none"
	case sub.File.MediaType == models.MediaTypePDF:
		return "pdf"
	default:
		return "text"
	}
}
