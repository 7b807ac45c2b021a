// Package textx holds text helpers for user-supplied input. Chat messages
// pass through here before they reach the model or the chat log.
package textx

import "strings"

// SanitizeText strips non-printable control characters from user input,
// keeping tabs and line breaks, and trims surrounding whitespace.
func SanitizeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return r
		case r < 32 || r == 127:
			return -1
		default:
			return r
		}
	}, s)
	return strings.TrimSpace(cleaned)
}
