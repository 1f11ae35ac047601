package neobookings

import (
	"strings"
	"time"
	"unicode"
)

// Sanitize normalizes a free-text identifier: leading/trailing whitespace is
// trimmed and control characters are stripped. Every caller-supplied string
// that ends up in an outbound payload goes through here first.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// ValidDate reports whether s is a date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidDateTime reports whether s is a datetime in YYYY-MM-DDThh:mm:ss form.
func ValidDateTime(s string) bool {
	_, err := time.Parse("2006-01-02T15:04:05", s)
	return err == nil
}
