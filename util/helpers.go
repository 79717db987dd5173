// Package util provides small helpers shared across the backend: env var
// lookup, rounding, and rendering category keys for humans.
package util

import (
	"math"
	"os"
	"strings"
	"unicode"
)

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TitleFromKey renders a snake_case identifier as a human readable title,
// e.g. "access_control" -> "Access Control"
func TitleFromKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// TruncateDescription caps a description at max characters, appending an
// ellipsis marker when it was longer
func TruncateDescription(desc string, max int) string {
	r := []rune(desc)
	if len(r) <= max {
		return desc
	}
	return string(r[:max]) + "..."
}
