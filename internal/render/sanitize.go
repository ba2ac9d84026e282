package render

import "strings"

// EscapeQuotes prefixes every quotation mark with a backslash.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// UnescapeQuotes reverses EscapeQuotes.
func UnescapeQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}

// Sanitize cleans up completion text for display.
func Sanitize(text string) string {
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = RemoveOuterQuotes(text)
	text = UnescapeQuotes(text)
	return RemoveLeadingNewlines(text)
}

// RemoveOuterQuotes strips one quotation mark from each end. Text that is
// not wrapped in quotes is returned unchanged.
func RemoveOuterQuotes(text string) string {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return text
	}
	return text[1 : len(text)-1]
}

// RemoveLeadingNewlines drops every line break before the first other character.
func RemoveLeadingNewlines(text string) string {
	return strings.TrimLeft(text, "\n")
}
