package source

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const bom = "\ufeff"

// NormalizeNewlines replaces every "\r\n" with "\n", leaving lone '\r' bytes
// untouched. Reports whether any replacement happened.
func NormalizeNewlines(s string) (string, bool) {
	if !strings.Contains(s, "\r\n") {
		return s, false
	}
	return strings.ReplaceAll(s, "\r\n", "\n"), true
}

// StripBOM drops a leading UTF-8 byte order mark, if present.
func StripBOM(s string) (string, bool) {
	if rest, ok := strings.CutPrefix(s, bom); ok {
		return rest, true
	}
	return s, false
}

// NormalizeNFC returns s in Unicode normalization form C, so that visually
// identical text scans identically regardless of how it was composed.
func NormalizeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Clean runs the recommended pre-scan pipeline: BOM strip, newline
// normalization, NFC normalization. Byte offsets taken against the cleaned
// text are only meaningful against the cleaned text.
func Clean(s string) string {
	s, _ = StripBOM(s)
	s, _ = NormalizeNewlines(s)
	return NormalizeNFC(s)
}
