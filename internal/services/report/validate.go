// Package report holds the rules applied to report text before it is sent
// to the model endpoint: length validation and prompt construction.
package report

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Length bounds for report text, in characters (Unicode code points).
const (
	MinChars = 50
	MaxChars = 50000
)

// Validation errors.
var (
	ErrTooShort = fmt.Errorf("report text must be at least %d characters long", MinChars)
	ErrTooLong  = fmt.Errorf("report text is too long (max %d characters); please upload a shorter report", MaxChars)
)

// Validate checks text against the length bounds.
// The minimum applies to the trimmed text, so whitespace-only input is
// always too short; the maximum applies to the raw text.
func Validate(text string) error {
	if CharCount(strings.TrimSpace(text)) < MinChars {
		return ErrTooShort
	}
	if CharCount(text) > MaxChars {
		return ErrTooLong
	}
	return nil
}

// CharCount returns the number of characters in text.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// Readiness is the status shown next to the generate button.
type Readiness struct {
	Ready   bool
	Message string
}

// CheckReadiness reports whether text can be submitted, with a message
// suitable for display.
func CheckReadiness(text string) Readiness {
	if err := Validate(text); err != nil {
		return Readiness{Ready: false, Message: err.Error()}
	}
	return Readiness{Ready: true, Message: "Ready"}
}

// IsValidationError reports whether err came from Validate.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrTooShort) || errors.Is(err, ErrTooLong)
}
