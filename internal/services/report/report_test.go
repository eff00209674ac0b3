package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{"empty", "", ErrTooShort},
		{"whitespace only", "   ", ErrTooShort},
		{"long whitespace only", strings.Repeat(" \n\t", 100), ErrTooShort},
		{"49 chars", strings.Repeat("a", 49), ErrTooShort},
		{"50 chars", strings.Repeat("a", 50), nil},
		{"49 chars padded with spaces", "  " + strings.Repeat("a", 49) + "  ", ErrTooShort},
		{"50 multibyte chars", strings.Repeat("é", 50), nil},
		{"50000 chars", strings.Repeat("a", 50000), nil},
		{"50001 chars", strings.Repeat("a", 50001), ErrTooLong},
		{"padding counts toward max", strings.Repeat("a", 49990) + strings.Repeat(" ", 11), ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.text)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestCheckReadiness(t *testing.T) {
	assert.Equal(t, Readiness{Ready: true, Message: "Ready"}, CheckReadiness(strings.Repeat("x", 60)))

	r := CheckReadiness("short")
	assert.False(t, r.Ready)
	assert.Equal(t, ErrTooShort.Error(), r.Message)
}

func TestBuildPrompt(t *testing.T) {
	reports := []string{
		"CBC: WBC 11.2 x10^9/L (high), Hgb 13.1 g/dL, Plt 250 x10^9/L. Impression: mild leukocytosis.",
		"Line one\nLine two with `backticks` and %s %d verbs\n",
		"",
	}

	for _, r := range reports {
		prompt := BuildPrompt(r)

		assert.Contains(t, prompt, r)
		for _, h := range Headings {
			assert.Contains(t, prompt, h)
		}
		assert.True(t, strings.HasSuffix(prompt, ReportMarker+"\n"+r+"\n"), "report must follow the marker")
	}
}

func TestBuildPrompt_HeadingsInOrder(t *testing.T) {
	prompt := BuildPrompt("report body")

	last := -1
	for _, h := range Headings {
		idx := strings.Index(prompt, h)
		assert.Greater(t, idx, last, "heading %q out of order", h)
		last = idx
	}
}

func TestBuildPrompt_Instructions(t *testing.T) {
	prompt := BuildPrompt("report body")

	assert.Contains(t, prompt, "jargon")
	assert.Contains(t, prompt, "5-7")
	assert.Contains(t, prompt, "Do NOT prescribe")
	assert.Contains(t, prompt, "healthcare provider")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt("same text"), BuildPrompt("same text"))
	assert.NotEqual(t, BuildPrompt("one"), BuildPrompt("two"))
}
