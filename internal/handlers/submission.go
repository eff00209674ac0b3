// submission.go turns an incoming request into a pipeline submission and
// maps pipeline failures to HTTP responses. The page and the JSON API
// share both halves.
package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Shimizu-Technology/medsum/internal/models"
	"github.com/Shimizu-Technology/medsum/internal/services/extract"
	"github.com/Shimizu-Technology/medsum/internal/services/pipeline"
)

// Request-level error codes. Pipeline failures use pipeline.Kind* codes.
const (
	codeInvalidRequest = "invalid_request"
	codeFileTooLarge   = "file_too_large"
	codeNotFound       = "not_found"
)

// multipartOverhead leaves room for form boundaries and the text field
// on top of the file size limit. JSON bodies get the same allowance for
// quoting and escapes.
const multipartOverhead = 1 << 20

// What a size limit message names, by how the report arrived.
const (
	subjectFile   = "File"
	subjectUpload = "Upload"
	subjectReport = "Report"
)

// requestError is a problem with the request itself, found before the
// pipeline runs.
type requestError struct {
	Status  int
	Code    string
	Message string
}

func (e *requestError) Error() string {
	return e.Message
}

// readSubmission builds a submission from either a JSON body
// ({"text": ..., "name": ...}) or a multipart form with "file" and/or "text".
func (h *Handler) readSubmission(c *gin.Context) (pipeline.Submission, *requestError) {
	h.limitBody(c)

	if strings.HasPrefix(c.ContentType(), "application/json") {
		// An empty or missing "text" is not a request error: the pipeline
		// reports it as no_input, the same as an empty form.
		var req models.CreateSummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			if isTooLarge(err) {
				return pipeline.Submission{}, h.tooLarge(subjectReport)
			}
			return pipeline.Submission{}, &requestError{
				Status:  http.StatusBadRequest,
				Code:    codeInvalidRequest,
				Message: "Request body must be JSON: {\"text\": \"...\", \"name\": \"...\"}",
			}
		}
		return pipeline.Submission{Text: req.Text, Name: req.Name}, nil
	}

	// FormFile parses the whole form first, so a size error surfaces here
	// instead of being swallowed by PostForm.
	fh, err := c.FormFile("file")
	sub := pipeline.Submission{Text: c.PostForm("text")}
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		// Text only (or nothing at all; the pipeline reports that)
		return sub, nil
	case err != nil:
		if isTooLarge(err) {
			return sub, h.tooLarge(subjectUpload)
		}
		return sub, &requestError{
			Status:  http.StatusBadRequest,
			Code:    codeInvalidRequest,
			Message: "Could not read the upload. Send a multipart form with a 'file' or 'text' field.",
		}
	}

	if fh.Size > h.Config.MaxUploadBytes {
		return sub, h.tooLarge(subjectFile)
	}

	file, err := fh.Open()
	if err != nil {
		return sub, &requestError{Status: http.StatusBadRequest, Code: codeInvalidRequest, Message: "Could not open the uploaded file"}
	}
	defer file.Close()

	// Go Pattern: io.ReadAll reads the entire reader into a byte slice.
	// The PDF library needs random access, so we hold the whole file anyway.
	data, err := io.ReadAll(file)
	if err != nil {
		return sub, &requestError{Status: http.StatusBadRequest, Code: codeInvalidRequest, Message: "Could not read the uploaded file"}
	}

	sub.File = &models.ReportInput{
		Data:      data,
		MediaType: extract.ResolveMediaType(fh.Header.Get("Content-Type"), fh.Filename, data),
		Name:      fh.Filename,
	}
	return sub, nil
}

// limitBody caps the request body at the upload limit plus overhead.
func (h *Handler) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Config.MaxUploadBytes+multipartOverhead)
}

// tooLarge builds the 413 response; subject names what was too big.
func (h *Handler) tooLarge(subject string) *requestError {
	return &requestError{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    codeFileTooLarge,
		Message: fmt.Sprintf("%s is too large. Maximum size is %dMB.", subject, h.Config.MaxUploadMB()),
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// statusForKind maps a pipeline failure kind to an HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case pipeline.KindNoInput:
		return http.StatusBadRequest
	case pipeline.KindUnsupportedType:
		return http.StatusUnsupportedMediaType
	case pipeline.KindDecode, pipeline.KindEmptyDocument, pipeline.KindNoExtractableText,
		pipeline.KindUnreadable, pipeline.KindTooShort, pipeline.KindTooLong:
		return http.StatusUnprocessableEntity
	case pipeline.KindGeneration:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// failureResponse converts a failed outcome into the standard error body.
func failureResponse(out pipeline.Outcome) models.ErrorResponse {
	kind := pipeline.FailureKind(out.Err)
	status := statusForKind(kind)
	return models.ErrorResponse{
		Error:   kind,
		Message: pipeline.UserMessage(out.Err),
		Code:    status,
	}
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    status,
	})
}
