package pipeline

import (
	"errors"

	"github.com/Shimizu-Technology/medsum/internal/services/extract"
	"github.com/Shimizu-Technology/medsum/internal/services/report"
	"github.com/Shimizu-Technology/medsum/internal/services/summary"
)

// Failure kinds, used as API error codes and metric labels.
const (
	KindNoInput           = "no_input"
	KindDecode            = "decode_error"
	KindEmptyDocument     = "empty_document"
	KindNoExtractableText = "no_extractable_text"
	KindUnreadable        = "unreadable_document"
	KindUnsupportedType   = "unsupported_media_type"
	KindTooShort          = "too_short"
	KindTooLong           = "too_long"
	KindGeneration        = "generation_failed"
	KindInternal          = "internal_error"
)

// FailureKind classifies an error returned in an Outcome.
func FailureKind(err error) string {
	var genErr *summary.GenerationError

	switch {
	case errors.Is(err, ErrNoInput):
		return KindNoInput
	case errors.Is(err, extract.ErrDecode):
		return KindDecode
	case errors.Is(err, extract.ErrEmptyDocument):
		return KindEmptyDocument
	case errors.Is(err, extract.ErrNoExtractableText):
		return KindNoExtractableText
	case errors.Is(err, extract.ErrUnreadableDocument):
		return KindUnreadable
	case errors.Is(err, extract.ErrUnsupportedMediaType):
		return KindUnsupportedType
	case errors.Is(err, report.ErrTooShort):
		return KindTooShort
	case errors.Is(err, report.ErrTooLong):
		return KindTooLong
	case errors.As(err, &genErr):
		return KindGeneration
	default:
		return KindInternal
	}
}

// UserMessage is the text shown to the user for a failed submission.
func UserMessage(err error) string {
	switch FailureKind(err) {
	case KindDecode:
		return "The text file could not be read. Please make sure it is saved as UTF-8."
	case KindEmptyDocument:
		return "The PDF file appears to be empty."
	case KindNoExtractableText:
		return "Could not extract text from the PDF. The file might be image-based (scanned)."
	case KindUnreadable:
		return "The uploaded file could not be read as a PDF."
	case KindUnsupportedType:
		return "Unsupported file type. Please upload a PDF or TXT file."
	case KindGeneration:
		return "Error generating summary. Please try again later."
	case KindNoInput, KindTooShort, KindTooLong:
		return capitalize(err.Error())
	default:
		return "Something went wrong while processing your report."
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
