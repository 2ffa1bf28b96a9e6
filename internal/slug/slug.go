// Package slug derives URL-safe lowercase identifiers from display names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that NFKD does not decompose into an ASCII base.
var substitutions = strings.NewReplacer(
	"&", " and ",
	"ß", "ss",
	"æ", "ae",
	"œ", "oe",
	"ø", "o",
	"đ", "d",
	"ł", "l",
	"þ", "th",
	"'", "",
	"’", "",
)

// Make returns the slug for s: accents folded to their ASCII base, lower
// case, "&" spelled out, apostrophes dropped, and every other run of
// characters outside [a-z0-9] collapsed into a single hyphen. Leading and
// trailing hyphens are trimmed. The result may be empty.
func Make(s string) string {
	// transform.Chain keeps internal state, so it is built per call.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	folded = substitutions.Replace(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}
