package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
	hyphensRe  = regexp.MustCompile(`-+`)

	apostrophes = strings.NewReplacer("’", "", "'", "")
)

// StripMarks lowercases s, decomposes it (NFD) and drops every nonspacing
// mark, so "Ésaïe" becomes "esaie".
func StripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		// runes.Remove and norm.NFD never fail on valid or invalid UTF-8
		return strings.ToLower(s)
	}
	return out
}

// Slugify turns a book display name into its URL path segment:
// "Cantique des Cantiques" -> "cantique-des-cantiques", "Lettre d’Amour" -> "lettre-damour".
// The result may be empty when s has no ASCII letters or digits.
func Slugify(s string) string {
	s = StripMarks(s)
	s = apostrophes.Replace(s)
	s = nonAlnumRe.ReplaceAllString(s, "-")
	s = hyphensRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
