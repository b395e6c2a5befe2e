package appcommands

import (
	"regexp"
	"strings"
)

var (
	markdownEscaper = strings.NewReplacer(
		"\\", "\\\\",
		"*", "\\*",
		"_", "\\_",
		"~", "\\~",
		"`", "\\`",
		"|", "\\|",
	)
	mentionPattern = regexp.MustCompile(`@(everyone|here|[!&]?[0-9]{17,20})`)
)

// escapeText neutralizes markdown formatting and mentions in user-supplied
// metadata before it is sent in a registration payload. Mentions are broken
// with a zero-width space so stored command metadata can never ping.
func escapeText(s string) string {
	if s == "" {
		return s
	}
	escaped := markdownEscaper.Replace(s)
	return mentionPattern.ReplaceAllString(escaped, "@​$1")
}
