package utils

import (
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Truncate shortens s to maxLength runes, ending with an ellipsis when cut
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString replaces control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = whitespace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
