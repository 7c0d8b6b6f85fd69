package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotless ı and dotted İ have no decomposition that leaves a plain i.
var turkishFold = strings.NewReplacer("ı", "i", "İ", "i")

// Fold lower-cases, strips diacritics and collapses whitespace,
// so "İREM  Emlak", "Irem emlak" and "irem emlak" compare equal.
func Fold(s string) string {
	s = turkishFold.Replace(s)
	lower := strings.ToLower(s)
	// a Chain carries state, so each call builds its own.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, lower)
	if err != nil {
		folded = lower
	}
	return strings.Join(strings.Fields(folded), " ")
}
