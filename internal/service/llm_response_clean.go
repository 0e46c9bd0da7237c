package service

import (
	"regexp"
	"strings"
)

var (
	fenceStart = regexp.MustCompile("^\\s*```(?:[a-zA-Z]+[ \\t]*\\r?\\n|\\s*)")
	fenceEnd   = regexp.MustCompile("\\s*```\\s*$")
)

// stripModelWrapping quita BOM y fences ``` que algunos modelos agregan a
// respuestas de texto plano.
func stripModelWrapping(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\uFEFF")
	s = fenceStart.ReplaceAllString(s, "")
	s = fenceEnd.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
