package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transform maps one string to another. Implementations must be pure and
// total.
type Transform func(string) string

var separators = regexp.MustCompile(`[ \-_.]+`)

// CaseFold lowers text using locale-invariant Unicode case folding.
func CaseFold(s string) string {
	return cases.Fold().String(s)
}

// NFC recomposes text into Unicode canonical composition form.
func NFC(s string) string {
	return norm.NFC.String(s)
}

// Trim strips leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// StripDiacritics canonically decomposes text, drops combining marks, and
// recomposes what remains.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// CollapseSeparators replaces every run of spaces, hyphens, underscores and
// dots with a single hyphen.
func CollapseSeparators(s string) string {
	return separators.ReplaceAllString(s, "-")
}

// Chain combines transforms into one, applied left to right.
func Chain(ts ...Transform) Transform {
	return func(s string) string {
		for _, t := range ts {
			s = t(s)
		}
		return s
	}
}

// Standard is the pipeline used by the record search: case folding, canonical
// composition, trimming, then separator collapsing.
var Standard = Chain(CaseFold, NFC, Trim, CollapseSeparators)
