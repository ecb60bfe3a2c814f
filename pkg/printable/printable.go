// Package printable provides helpers for the printable ASCII range used by spreadsheet exports.
package printable

import "strings"

const (
	minPrintable = 0x20
	maxPrintable = 0x7E
)

// IsPrintable reports whether b is in the printable ASCII range [0x20, 0x7E].
func IsPrintable(b byte) bool {
	return b >= minPrintable && b <= maxPrintable
}

// Sanitize strips every character outside the printable ASCII range.
func Sanitize(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if !IsPrintable(s[i]) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= minPrintable && r <= maxPrintable {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
