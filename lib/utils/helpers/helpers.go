package helpers

import (
	"context"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// Truncate trims value and cuts it to length runes.
func Truncate(value string, length int) string {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if len(runes) > length {
		return strings.TrimSpace(string(runes[:length]))
	}
	return value
}

// Shorten cuts value to length runes and marks the cut with an ellipsis.
func Shorten(value string, length int) string {
	runes := []rune(value)
	if len(runes) > length {
		return string(runes[:length]) + "..."
	}
	return value
}
