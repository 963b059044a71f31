package services

import (
	"strconv"
	"strings"
)

// CaptureText trims surrounding whitespace from a form value.
// It reports false when nothing is left.
func CaptureText(raw string) (string, bool) {
	text := strings.TrimSpace(raw)
	return text, text != ""
}

// ParseMaxResults reads the result-count selector as a base-10 integer.
// The value is not range checked. Anything that is not an integer yields
// fallback.
func ParseMaxResults(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	return n
}
