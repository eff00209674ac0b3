// Package render turns model output (markdown) into HTML for the page.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders markdown to HTML. Raw HTML in the input is not passed
// through (goldmark's default), so model output cannot inject markup.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown returns a renderer with GitHub-flavored extensions enabled.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// HTML renders src. The result is safe to embed in an html/template.
func (m *Markdown) HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
