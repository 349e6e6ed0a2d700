// ABOUTME: Date and time normalization for imported rows.
// ABOUTME: Converts US-style dates and 12-hour clock times to ISO forms.
package models

import (
	"strings"
	"time"
)

// NormalizeDate converts dates like "7/30/2025" to "2025-07-30". Strings
// that don't parse as M/D/YYYY pass through unchanged, on the assumption
// they are already ISO.
func NormalizeDate(s string) string {
	t, err := time.Parse("1/2/2006", strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

// NormalizeTime converts times like "9:30 AM" to "09:30". Anything else
// passes through unchanged.
func NormalizeTime(s string) string {
	t, err := time.Parse("3:04 PM", strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return t.Format("15:04")
}
