package utils

import (
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FirstSegment returns the first piece of a comma-delimited string, trimmed.
func FirstSegment(s string) string {
	return strings.TrimSpace(strings.SplitN(s, ",", 2)[0])
}
