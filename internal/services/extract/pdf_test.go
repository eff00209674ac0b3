// pdf_test.go: Extraction through the real ledongthuc/pdf parser, using
// small documents built in memory.
package extract

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shimizu-Technology/medsum/internal/models"
)

// buildPDF writes a minimal PDF with one page per entry in pages. Each
// entry is the text drawn on that page; an empty entry gives the page an
// empty content stream. Offsets in the xref table are exact, which the
// parser requires.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	var objs []string
	objs = append(objs, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	objs = append(objs, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, text := range pages {
		objs = append(objs, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i))

		content := ""
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		}
		objs = append(objs, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objs))
	for i, obj := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objs)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)

	return buf.Bytes()
}

func TestExtract_RealPDF(t *testing.T) {
	tests := []struct {
		name    string
		data    func(t *testing.T) []byte
		want    []string // Fragments expected in this order
		wantErr error
	}{
		{
			name: "pages joined in document order",
			data: func(t *testing.T) []byte { return buildPDF(t, "Hello page one", "Second page") },
			want: []string{"Hello page one", "Second page"},
		},
		{
			name: "blank page skipped",
			data: func(t *testing.T) []byte { return buildPDF(t, "", "Hemoglobin 13.5 g/dL") },
			want: []string{"Hemoglobin 13.5 g/dL"},
		},
		{
			name:    "no pages",
			data:    func(t *testing.T) []byte { return buildPDF(t) },
			wantErr: ErrEmptyDocument,
		},
		{
			name:    "pages without text",
			data:    func(t *testing.T) []byte { return buildPDF(t, "", "") },
			wantErr: ErrNoExtractableText,
		},
		{
			name:    "whitespace only text",
			data:    func(t *testing.T) []byte { return buildPDF(t, "   ") },
			wantErr: ErrNoExtractableText,
		},
		{
			name: "truncated after the header",
			data: func(t *testing.T) []byte {
				full := buildPDF(t, "Hello page one")
				return full[:len(full)/2]
			},
			wantErr: ErrUnreadableDocument,
		},
	}

	ext := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ext.Extract(models.ReportInput{Data: tt.data(t), MediaType: models.MediaTypePDF, Name: "report.pdf"})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)

			last := -1
			for _, frag := range tt.want {
				i := strings.Index(got, frag)
				require.GreaterOrEqual(t, i, 0, "missing %q in %q", frag, got)
				assert.Greater(t, i, last, "%q out of order in %q", frag, got)
				last = i
			}
		})
	}
}

func TestOpenPDF_PageCount(t *testing.T) {
	doc, err := OpenPDF(buildPDF(t, "one", "two", "three"))
	require.NoError(t, err)
	assert.Equal(t, 3, doc.NumPage())

	text, err := doc.PageText(2)
	require.NoError(t, err)
	assert.Contains(t, text, "two")

	// Past the last page there is nothing to read
	text, err = doc.PageText(4)
	require.NoError(t, err)
	assert.Empty(t, text)
}
