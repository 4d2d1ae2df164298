// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make lowercases the name, strips diacritics and collapses every run of
// non-alphanumeric characters into a single hyphen. The result is
// deterministic: the same name always produces the same slug, and uniqueness
// is left to the store's primary key.
func Make(name string) string {
	deaccented, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		deaccented = name
	}

	var b strings.Builder

	hyphenPending := false

	for _, r := range strings.ToLower(deaccented) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			hyphenPending = b.Len() > 0
			continue
		}

		if hyphenPending {
			b.WriteByte('-')
			hyphenPending = false
		}

		b.WriteRune(r)
	}

	return b.String()
}
