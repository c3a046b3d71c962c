// Package textnorm provides the canonical text normalization used for
// reference-key comparison: lowercasing, accent stripping, separator
// folding, and whitespace collapsing.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes to NFD, drops combining marks, and recomposes.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// sepReplacer folds the separators filenames use between words into spaces,
// so "Joao_Silva" and "João Silva" compare equal after normalization.
var sepReplacer = strings.NewReplacer(".", " ", "_", " ", "-", " ")

// Normalize lowercases s, strips diacritics ("João" -> "joao"), folds
// dot/underscore/dash separators into spaces, collapses runs of whitespace
// to single spaces, and trims the ends. It never fails; empty input yields
// empty output. Normalize is idempotent.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	out = sepReplacer.Replace(out)
	return strings.Join(strings.Fields(out), " ")
}
