package util

import "strconv"

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// MaskKey returns a masked form of a credential safe for diagnostics.
// Only the first four characters survive; the rest is replaced.
func MaskKey(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
