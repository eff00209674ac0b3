// export_test.go contains tests for download filename handling.
//
// Go Pattern: Table-driven tests are the standard Go testing pattern.
// You define a slice of test cases (each with a name, inputs, and expected
// outputs), then loop through them. This makes it easy to add new cases
// and keeps the test logic DRY.
package handlers

import (
	"strings"
	"testing"
)

// TestSummaryFilename verifies the {name-without-extension}_summary.txt rule.
func TestSummaryFilename(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{"pdf", "lab_results.pdf", "lab_results_summary.txt"},
		{"txt", "notes.txt", "notes_summary.txt"},
		{"upper-case extension", "SCAN.PDF", "SCAN_summary.txt"},
		{"pasted report", "pasted_report", "pasted_report_summary.txt"},
		{"other extension kept", "report.v2.docx", "report.v2.docx_summary.txt"},
		{"only last extension dropped", "cbc.txt.pdf", "cbc.txt_summary.txt"},
		{"client path stripped", `C:\Users\me\blood work.pdf`, "blood work_summary.txt"},
		{"unsafe characters", `a"b?.txt`, "a-b-_summary.txt"},
		{"empty", "", "medical_report_summary.txt"},
	}

	for _, tt := range tests {
		// Go Pattern: t.Run creates a sub-test with its own name.
		t.Run(tt.name, func(t *testing.T) {
			result := SummaryFilename(tt.source)
			if result != tt.expected {
				t.Errorf("SummaryFilename(%q) = %q, want %q", tt.source, result, tt.expected)
			}
		})
	}
}

// TestSanitizeFilename verifies filename cleaning for Content-Disposition headers.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Hello World", "Hello World"},
		{"colons replaced", "Labs: March", "Labs- March"},
		{"collapse hyphens", "a::b", "a-b"},
		{"collapse spaces", "a   b", "a b"},
		{"newline becomes space", "a\nb", "a b"},
		{"trim whitespace", "  padded  ", "padded"},
		{"forward slash path", "scans/2025/mri.pdf", "mri.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}

	t.Run("long names truncated to 100 characters", func(t *testing.T) {
		result := sanitizeFilename(strings.Repeat("é", 150))
		if got := len([]rune(result)); got != 100 {
			t.Errorf("sanitizeFilename length = %d, want 100", got)
		}
	})
}
