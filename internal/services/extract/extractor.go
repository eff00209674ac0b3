// Package extract turns uploaded report files into plain text.
//
// PDFs are parsed with the ledongthuc/pdf library, a pure Go implementation
// (no CGO), so the server stays a single binary. Plain-text files are taken
// verbatim as long as they are valid UTF-8.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/Shimizu-Technology/medsum/internal/models"
)

// Extraction errors. Callers match them with errors.Is.
var (
	ErrDecode               = errors.New("file is not valid UTF-8 text")
	ErrEmptyDocument        = errors.New("PDF document has no pages")
	ErrNoExtractableText    = errors.New("no extractable text in PDF (the file might be image-based)")
	ErrUnreadableDocument   = errors.New("file could not be read as a PDF")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// Document is the page-level view of a PDF the extractor needs.
// Pages are 1-indexed, like the underlying library.
type Document interface {
	NumPage() int
	PageText(page int) (string, error)
}

// Opener opens raw bytes as a Document.
type Opener func(data []byte) (Document, error)

// Extractor converts a ReportInput to plain text.
type Extractor struct {
	open Opener
}

// New returns an Extractor backed by ledongthuc/pdf.
func New() *Extractor {
	return &Extractor{open: OpenPDF}
}

// NewWithOpener returns an Extractor that opens PDFs with the given function.
func NewWithOpener(open Opener) *Extractor {
	return &Extractor{open: open}
}

// Extract returns the plain text of the input.
func (e *Extractor) Extract(in models.ReportInput) (string, error) {
	switch in.MediaType {
	case models.MediaTypeText:
		return decodeText(in.Data)
	case models.MediaTypePDF:
		return e.extractPDF(in.Data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, in.MediaType)
	}
}

func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrDecode
	}
	return string(data), nil
}

// extractPDF visits pages in document order and joins the text of every
// page that produced some with a newline.
func (e *Extractor) extractPDF(data []byte) (string, error) {
	doc, err := e.open(data)
	if err != nil {
		return "", err
	}

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return "", ErrEmptyDocument
	}

	pages := make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		text, err := doc.PageText(i)
		if err != nil {
			// Image-only or damaged pages are skipped, not fatal
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}

	if len(pages) == 0 {
		return "", ErrNoExtractableText
	}
	return strings.Join(pages, "\n"), nil
}

// ValidatePDF checks if the data looks like a PDF by checking the magic bytes.
func ValidatePDF(data []byte) bool {
	// PDF files start with "%PDF-"
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

// OpenPDF opens data with ledongthuc/pdf.
//
// Go Pattern: The library needs an io.ReaderAt plus the size for random
// access to the PDF structure, so the in-memory upload is wrapped in a
// bytes.Reader.
func OpenPDF(data []byte) (doc Document, err error) {
	if !ValidatePDF(data) {
		return nil, ErrUnreadableDocument
	}

	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}
	return &pdfDocument{reader: reader}, nil
}

type pdfDocument struct {
	reader *pdf.Reader
}

func (d *pdfDocument) NumPage() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) PageText(i int) (text string, err error) {
	// The parser panics on malformed content streams
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", i, r)
		}
	}()

	page := d.reader.Page(i)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
