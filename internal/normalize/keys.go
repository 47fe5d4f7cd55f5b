package normalize

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Comparison-key canonicalization for duplicate detection. Every function is
// pure and never errors: unparseable input degrades to "" (absent), and an
// absent key can never contribute evidence towards a match.

// Date layouts accepted for date of birth, day-first variants before
// month-first since the source data is AU/NZ.
var dobLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02.01.2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// PhoneKey strips all non-digit characters. Absent if nothing remains.
func PhoneKey(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DateKey parses a date of birth into ISO-8601 (YYYY-MM-DD). Unparseable
// input returns "" rather than an error.
func DateKey(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// AddressKey lowercases, strips diacritics and removes every non-alphanumeric
// rune, so "1 Main St." and "1, MAIN ST" compare equal.
func AddressKey(raw string) string {
	s := stripDiacritics(strings.ToLower(strings.TrimSpace(raw)))
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TaxKey strips whitespace and punctuation and uppercases what remains.
func TaxKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// EmailKey lowercases and trims.
func EmailKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// stripDiacritics decomposes to NFD and drops combining marks, so accented
// and unaccented spellings of the same address compare equal.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
