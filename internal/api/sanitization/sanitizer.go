package sanitization

import (
	"strings"
	"unicode"
)

// SanitizeField strips control characters from a submitted value and
// normalizes line endings. Newlines and tabs survive; everything else is
// left for the field rules to judge, and escaping happens on output.
func SanitizeField(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)
}

// SanitizeToken trims a bot-check token.
func SanitizeToken(input string) string {
	return strings.TrimSpace(input)
}
