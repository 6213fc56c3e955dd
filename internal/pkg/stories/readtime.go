package stories

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`\d+`)

// NormalizeReadTime reduces a free-text reading time ("ca. 8 Minuten") to
// the display pattern "<n> Min". Input without digits is returned trimmed.
func NormalizeReadTime(text string) string {
	if text == "" {
		return ""
	}
	if digits := digitRun.FindString(text); digits != "" {
		return digits + " Min"
	}
	return strings.TrimSpace(text)
}
